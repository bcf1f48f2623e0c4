package catalog

import (
	"fmt"
	"math/rand"
	"testing"
)

// checkHeapOrder verifies every parent outranks or ties both children.
func checkHeapOrder(t *testing.T, r *playRanker) {
	t.Helper()
	for i := range r.slots {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < len(r.slots) && r.slots[i].plays < r.slots[child].plays {
				t.Fatalf("heap order violated at %d (%d plays) -> %d (%d plays)",
					i, r.slots[i].plays, child, r.slots[child].plays)
			}
		}
	}
}

func TestRecordPlayCounts(t *testing.T) {
	r := newPlayRanker(16)

	for i := 0; i < 3; i++ {
		r.recordPlay("alpha")
	}
	r.recordPlay("beta")

	if got := r.top(); got != "alpha" {
		t.Errorf("top() = %q, want %q", got, "alpha")
	}
	if got := r.playsFor("alpha"); got != 3 {
		t.Errorf("playsFor(alpha) = %d, want 3", got)
	}
	if got := r.playsFor("beta"); got != 1 {
		t.Errorf("playsFor(beta) = %d, want 1", got)
	}
	if got := r.playsFor("gamma"); got != 0 {
		t.Errorf("playsFor(gamma) = %d, want 0", got)
	}
	checkHeapOrder(t, r)
}

func TestRecordPlayNoDuplicates(t *testing.T) {
	r := newPlayRanker(16)
	for i := 0; i < 5; i++ {
		r.recordPlay("same name")
	}
	if r.size() != 1 {
		t.Fatalf("expected one slot, got %d", r.size())
	}
	if r.playsFor("same name") != 5 {
		t.Errorf("plays = %d, want 5", r.playsFor("same name"))
	}
}

func TestRankerCapacity(t *testing.T) {
	r := newPlayRanker(4)
	for i := 0; i < 4; i++ {
		r.recordPlay(fmt.Sprintf("song %c", 'a'+i))
	}
	r.recordPlay("song a") // promote one so top is well defined
	if r.size() != 4 {
		t.Fatalf("size = %d, want 4", r.size())
	}

	// New names beyond capacity are dropped silently.
	r.recordPlay("overflow")
	if r.size() != 4 {
		t.Fatalf("overflow grew the heap: size = %d", r.size())
	}
	if r.playsFor("overflow") != 0 {
		t.Error("dropped play was recorded")
	}
	if got := r.top(); got != "song a" {
		t.Errorf("top after overflow = %q, want %q", got, "song a")
	}

	// Known names still count at capacity.
	r.recordPlay("song b")
	r.recordPlay("song b")
	r.recordPlay("song b")
	if got := r.top(); got != "song b" {
		t.Errorf("top = %q, want %q", got, "song b")
	}
	checkHeapOrder(t, r)
}

func TestTopEmpty(t *testing.T) {
	r := newPlayRanker(8)
	if got := r.top(); got != "" {
		t.Errorf("top of empty ranker = %q, want empty", got)
	}
	if _, ok := r.removeTop(); ok {
		t.Error("removeTop on empty ranker reported success")
	}
}

func TestRemoveTopDrainsDescending(t *testing.T) {
	r := newPlayRanker(32)
	counts := map[string]int{"one": 1, "five": 5, "three": 3, "nine": 9, "seven": 7}
	for name, n := range counts {
		for i := 0; i < n; i++ {
			r.recordPlay(name)
		}
	}
	checkHeapOrder(t, r)

	prev := int(^uint(0) >> 1)
	drained := 0
	for {
		slot, ok := r.removeTop()
		if !ok {
			break
		}
		if slot.plays > prev {
			t.Fatalf("drain not descending: %d after %d", slot.plays, prev)
		}
		if slot.plays != counts[slot.name] {
			t.Errorf("drained %q with %d plays, want %d", slot.name, slot.plays, counts[slot.name])
		}
		prev = slot.plays
		drained++
		checkHeapOrder(t, r)
	}
	if drained != len(counts) {
		t.Errorf("drained %d slots, want %d", drained, len(counts))
	}
}

func TestHeapOrderRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := newPlayRanker(64)
	names := make([]string, 40)
	for i := range names {
		names[i] = fmt.Sprintf("track %02d", i)
	}

	for i := 0; i < 2000; i++ {
		r.recordPlay(names[rng.Intn(len(names))])
	}
	checkHeapOrder(t, r)

	// top must hold the true maximum
	max := 0
	for _, slot := range r.slots {
		if slot.plays > max {
			max = slot.plays
		}
	}
	if r.playsFor(r.top()) != max {
		t.Errorf("top has %d plays, true max is %d", r.playsFor(r.top()), max)
	}
}
