package kdpart

import (
	"math"
	"sort"
)

// ResultSet holds the candidates retained by one nearest-neighbor query,
// ordered ascending by squared distance and bounded to the query's neighbor
// count. Once full, inserting a closer candidate evicts the entry with the
// largest squared distance. Entries with equal squared distances coexist
// and keep their insertion order.
//
// A ResultSet is built by a query and read-only afterwards. Entries
// reference points inside the tree, so the set stays valid for the lifetime
// of the tree it came from.
type ResultSet struct {
	entries []resultEntry
	cap     int
}

type resultEntry struct {
	distSq float64
	pt     *Point
}

func newResultSet(capacity int) *ResultSet {
	return &ResultSet{entries: make([]resultEntry, 0, capacity), cap: capacity}
}

// add inserts a candidate keeping entries sorted ascending by squared
// distance. A key equal to existing keys inserts after them. When the set
// would exceed capacity, the last entry (largest key, most recently inserted
// among equals) is dropped. A candidate no closer than a full set's worst
// entry is discarded.
func (rs *ResultSet) add(distSq float64, pt *Point) {
	i := sort.Search(len(rs.entries), func(k int) bool { return rs.entries[k].distSq > distSq })
	if i == len(rs.entries) {
		if len(rs.entries) < rs.cap {
			rs.entries = append(rs.entries, resultEntry{distSq: distSq, pt: pt})
		}
		return
	}
	if len(rs.entries) < rs.cap {
		rs.entries = append(rs.entries, resultEntry{})
	}
	copy(rs.entries[i+1:], rs.entries[i:])
	rs.entries[i] = resultEntry{distSq: distSq, pt: pt}
}

// worst returns the largest squared distance in the set, or +Inf when the
// set is empty.
func (rs *ResultSet) worst() float64 {
	if len(rs.entries) == 0 {
		return math.Inf(1)
	}
	return rs.entries[len(rs.entries)-1].distSq
}

// full reports whether the set has reached its capacity.
func (rs *ResultSet) full() bool { return len(rs.entries) >= rs.cap }

// Len returns the number of entries currently held.
func (rs *ResultSet) Len() int { return len(rs.entries) }

// Cap returns the maximum number of entries the set retains.
func (rs *ResultSet) Cap() int { return rs.cap }

// At returns the i-th entry's squared distance and point, ascending by
// distance. Panics if i is out of range.
func (rs *ResultSet) At(i int) (float64, Point) {
	e := rs.entries[i]
	return e.distSq, *e.pt
}

// Dists returns the squared distances of all entries in ascending order.
func (rs *ResultSet) Dists() []float64 {
	out := make([]float64, len(rs.entries))
	for i, e := range rs.entries {
		out[i] = e.distSq
	}
	return out
}

// Points returns copies of all entries' points, aligned with Dists.
func (rs *ResultSet) Points() []Point {
	out := make([]Point, len(rs.entries))
	for i, e := range rs.entries {
		out[i] = *e.pt
	}
	return out
}
