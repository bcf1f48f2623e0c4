package catalog

import (
	"strings"
	"testing"
)

func TestNameIndexInsertContains(t *testing.T) {
	ix := newNameIndex()

	ix.insert("blue moon")
	if !ix.contains("blue moon") {
		t.Fatal("inserted name not found")
	}
	if ix.contains("blue") {
		t.Error("prefix of an inserted name must not match")
	}
	if ix.contains("blue moons") {
		t.Error("extension of an inserted name must not match")
	}

	// idempotent under repeated insert
	ix.insert("blue moon")
	if !ix.contains("blue moon") || ix.names != 1 {
		t.Errorf("repeated insert changed state: names=%d", ix.names)
	}
}

func TestNameIndexSpaceElision(t *testing.T) {
	ix := newNameIndex()

	// "the song" and "thesong" share one letter path. The later insert
	// overwrites the canonical form stored at the terminal node.
	ix.insert("thesong")
	if !ix.contains("the song") {
		t.Fatal("space placement must not affect lookup")
	}
	ix.insert("the song")
	if !ix.contains("thesong") {
		t.Fatal("space placement must not affect lookup after overwrite")
	}
	if ix.names != 1 {
		t.Errorf("colliding paths counted twice: names=%d", ix.names)
	}

	var got []string
	if err := ix.walkNames(func(name string) error {
		got = append(got, name)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "the song" {
		t.Errorf("canonical name should be the last inserted form, got %v", got)
	}
}

func TestNameIndexEmptyInput(t *testing.T) {
	ix := newNameIndex()

	ix.insert("")
	ix.insert("   ")
	if ix.root.terminal {
		t.Fatal("root must never be marked terminal")
	}
	if ix.names != 0 {
		t.Errorf("empty inserts counted: names=%d", ix.names)
	}
	if ix.contains("") || ix.contains("   ") {
		t.Error("empty names must not be found")
	}
}

func TestWalkNamesOrder(t *testing.T) {
	ix := newNameIndex()
	for _, name := range []string{"zebra", "abba", "ab", "yellow sub", "abc"} {
		ix.insert(name)
	}

	var got []string
	if err := ix.walkNames(func(name string) error {
		got = append(got, name)
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	// Depth-first over ascending child slots: names come out in letter-path
	// order, a prefix before its extensions.
	want := []string{"ab", "abba", "abc", "yellow sub", "zebra"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("walk order = %v, want %v", got, want)
	}
}

func TestWalkNamesDeepPath(t *testing.T) {
	// Traversal is iterative; a pathological name length must not be a
	// problem for the call stack.
	ix := newNameIndex()
	deep := strings.Repeat("ab", 5000)
	ix.insert(deep)

	count := 0
	if err := ix.walkNames(func(string) error {
		count++
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 name from deep path, got %d", count)
	}
	if !ix.contains(deep) {
		t.Error("deep name not found")
	}
}
