package catalog

const alphabetSize = 26

// trieNode is one node of the name index. Each of the 26 child slots maps
// one letter a-z; terminal marks the end of at least one inserted name and
// canonical holds the full normalized form (spaces included) of the last
// name that ended here.
type trieNode struct {
	children  [alphabetSize]*trieNode
	terminal  bool
	canonical string
}

// nameIndex stores normalized song names for exact-match lookup.
//
// Paths are built from letters only: spaces in the normalized name are
// skipped while walking, so "the song" and "thesong" share one path and the
// later insert overwrites the stored canonical form. That collapsing is a
// documented catalog property, callers rely on it for lookups.
type nameIndex struct {
	root  *trieNode
	names int
}

func newNameIndex() *nameIndex {
	return &nameIndex{root: &trieNode{}}
}

// insert walks and extends the letter path for an already-normalized name,
// then marks the final node terminal. Empty names are a no-op so the root
// itself never becomes terminal. Idempotent under repeated insert.
func (ix *nameIndex) insert(name string) {
	if ix.root == nil || name == "" {
		return
	}
	curr := ix.root
	walked := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == ' ' {
			continue
		}
		slot := int(c - 'a')
		if slot < 0 || slot >= alphabetSize {
			continue
		}
		if curr.children[slot] == nil {
			curr.children[slot] = &trieNode{}
		}
		curr = curr.children[slot]
		walked = true
	}
	if !walked {
		return
	}
	if !curr.terminal {
		curr.terminal = true
		ix.names++
	}
	curr.canonical = name
}

// contains reports whether the letter path for an already-normalized name
// exists and ends at a terminal node.
func (ix *nameIndex) contains(name string) bool {
	if ix.root == nil || name == "" {
		return false
	}
	curr := ix.root
	walked := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == ' ' {
			continue
		}
		slot := int(c - 'a')
		if slot < 0 || slot >= alphabetSize {
			continue
		}
		if curr.children[slot] == nil {
			return false
		}
		curr = curr.children[slot]
		walked = true
	}
	return walked && curr.terminal
}

// walkNames visits every terminal canonical name depth-first, child slots
// ascending 0..25, so output order follows letter values rather than
// insertion order. The traversal uses an explicit stack: trie depth is
// bounded only by the longest inserted name and should not ride the call
// stack.
func (ix *nameIndex) walkNames(visit func(name string) error) error {
	if ix.root == nil {
		return nil
	}
	type frame struct {
		node *trieNode
		slot int
	}
	stack := []frame{{node: ix.root}}
	if ix.root.terminal {
		if err := visit(ix.root.canonical); err != nil {
			return err
		}
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.slot >= alphabetSize {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.node.children[top.slot]
		top.slot++
		if child == nil {
			continue
		}
		if child.terminal {
			if err := visit(child.canonical); err != nil {
				return err
			}
		}
		stack = append(stack, frame{node: child})
	}
	return nil
}
