/*
Package catalog keeps an in-memory index of song names and a running
most-played ranking.

Two independent structures sit behind one Catalog: a 26-way letter trie for
exact-match name lookup and a bounded max-heap for play counts. They are not
synchronized with each other -- a song can be played without being indexed
and indexed without ever being played. All input passes through Normalize
first, so lookups are case-insensitive and ignore anything outside ASCII
letters and spaces.

Most operations favor silent no-ops over errors: empty names, plays past the
ranker capacity and queries against an empty catalog all simply do nothing.
Storage I/O is the one place a failure is reported, see store.go.

A Catalog has no internal locking. It is meant for single-threaded use;
callers who share one across goroutines must serialize access themselves.
*/
package catalog

// Options configures the fixed capacities of a Catalog.
type Options struct {
	// MaxNameLength truncates normalized names. Zero means DefaultMaxNameLength.
	MaxNameLength int
	// RankerCapacity bounds distinct played names. Zero means DefaultRankerCapacity.
	RankerCapacity int
}

// Catalog owns one name index and one play ranker. The zero value is usable:
// every operation initializes an empty catalog on first touch, with default
// capacities.
type Catalog struct {
	opts   Options
	index  *nameIndex
	ranker *playRanker
}

// New returns an empty catalog with the given capacities.
func New(opts Options) *Catalog {
	c := &Catalog{opts: opts}
	c.Reset()
	return c
}

// Reset discards all indexed names and play counts, leaving the catalog as
// if freshly constructed. Safe to call at any time, repeatedly, including on
// a zero-value catalog.
func (c *Catalog) Reset() {
	if c.opts.MaxNameLength <= 0 {
		c.opts.MaxNameLength = DefaultMaxNameLength
	}
	if c.opts.RankerCapacity <= 0 {
		c.opts.RankerCapacity = DefaultRankerCapacity
	}
	c.index = newNameIndex()
	c.ranker = newPlayRanker(c.opts.RankerCapacity)
}

// ensure lazily initializes a catalog that has never been reset.
func (c *Catalog) ensure() {
	if c.index == nil || c.ranker == nil {
		c.Reset()
	}
}

// AddName indexes a song name. Names that normalize to nothing are ignored.
func (c *Catalog) AddName(raw string) {
	c.ensure()
	c.index.insert(Normalize(raw, c.opts.MaxNameLength))
}

// ContainsName reports whether a name was previously added, compared on the
// normalized letter path (so spacing and case differences do not matter).
func (c *Catalog) ContainsName(raw string) bool {
	c.ensure()
	return c.index.contains(Normalize(raw, c.opts.MaxNameLength))
}

// RecordPlay counts one play of a song. The name does not have to be
// indexed. Once the ranker is full, plays of new names are dropped.
func (c *Catalog) RecordPlay(raw string) {
	c.ensure()
	c.ranker.recordPlay(Normalize(raw, c.opts.MaxNameLength))
}

// TopName returns the most played name so far, or "" when no play has been
// recorded. Ties are broken by heap position, not alphabetically.
func (c *Catalog) TopName() string {
	c.ensure()
	return c.ranker.top()
}

// PlayCount returns the recorded plays for a name, 0 if it was never played
// or its first play was dropped at capacity.
func (c *Catalog) PlayCount(raw string) int {
	c.ensure()
	return c.ranker.playsFor(Normalize(raw, c.opts.MaxNameLength))
}

// NameCount returns how many distinct names the index holds.
func (c *Catalog) NameCount() int {
	c.ensure()
	return c.index.names
}

// Stats returns counters about the catalog, keyed the same way the IPC
// surface reports them.
func (c *Catalog) Stats() map[string]int {
	c.ensure()
	return map[string]int{
		"names":          c.index.names,
		"played":         c.ranker.size(),
		"rankerCapacity": c.ranker.capacity,
		"maxNameLength":  c.opts.MaxNameLength,
	}
}
