package catalog

// DefaultRankerCapacity bounds how many distinct names the play ranker
// tracks. Plays for new names beyond it are dropped silently.
const DefaultRankerCapacity = 2000

// playSlot pairs a normalized name with its running play count.
type playSlot struct {
	name  string
	plays int
}

// playRanker is an array-backed binary max-heap over play counts with a
// fixed capacity. Names are unique within the heap: a repeat play finds the
// existing slot by linear scan and bumps it in place.
//
// When several names share the maximum count, top returns whichever slot
// currently sits at index 0. That is a product of play order and heap
// rebalancing, not of the names themselves, so ties are non-deterministic
// from the caller's point of view.
type playRanker struct {
	slots    []playSlot
	capacity int
}

func newPlayRanker(capacity int) *playRanker {
	if capacity <= 0 {
		capacity = DefaultRankerCapacity
	}
	return &playRanker{
		slots:    make([]playSlot, 0, capacity),
		capacity: capacity,
	}
}

// recordPlay counts one play of an already-normalized name. A known name is
// incremented and sifted up; an unknown one takes a fresh slot with one play
// while capacity lasts. At capacity the play is dropped with no signal, the
// heap never evicts.
func (r *playRanker) recordPlay(name string) {
	if name == "" {
		return
	}
	for i := range r.slots {
		if r.slots[i].name == name {
			r.slots[i].plays++
			r.siftUp(i)
			return
		}
	}
	if len(r.slots) >= r.capacity {
		return
	}
	r.slots = append(r.slots, playSlot{name: name, plays: 1})
	r.siftUp(len(r.slots) - 1)
}

// top returns the most played name, or "" when nothing has been played.
func (r *playRanker) top() string {
	if len(r.slots) == 0 {
		return ""
	}
	return r.slots[0].name
}

// playsFor returns the current count for a name, 0 if it is not tracked.
func (r *playRanker) playsFor(name string) int {
	for i := range r.slots {
		if r.slots[i].name == name {
			return r.slots[i].plays
		}
	}
	return 0
}

// removeTop pops the maximum slot, restoring heap order with a sift-down.
// Play events never shrink the heap on their own; this exists so draining
// the ranker in descending order stays correct.
func (r *playRanker) removeTop() (playSlot, bool) {
	if len(r.slots) == 0 {
		return playSlot{}, false
	}
	max := r.slots[0]
	last := len(r.slots) - 1
	r.slots[0] = r.slots[last]
	r.slots = r.slots[:last]
	if len(r.slots) > 0 {
		r.siftDown(0)
	}
	return max, true
}

func (r *playRanker) size() int { return len(r.slots) }

// siftUp moves the slot at i toward the root while it outranks its parent.
// A play only ever increases a count, so repair after recordPlay is upward
// only.
func (r *playRanker) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if r.slots[parent].plays >= r.slots[i].plays {
			return
		}
		r.slots[parent], r.slots[i] = r.slots[i], r.slots[parent]
		i = parent
	}
}

// siftDown moves the slot at i toward the leaves while a child outranks it.
func (r *playRanker) siftDown(i int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < len(r.slots) && r.slots[left].plays > r.slots[largest].plays {
			largest = left
		}
		if right < len(r.slots) && r.slots[right].plays > r.slots[largest].plays {
			largest = right
		}
		if largest == i {
			return
		}
		r.slots[i], r.slots[largest] = r.slots[largest], r.slots[i]
		i = largest
	}
}
