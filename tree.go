package kdpart

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrEmptyTree is returned by queries and partitioning when the tree holds
// no points.
var ErrEmptyTree = errors.New("kdpart: tree is empty")

// Tree is a balanced k-d tree over a fixed set of weighted points. It is
// built once and immutable afterwards; any number of goroutines may query
// one tree concurrently.
//
// Nodes live in a flat arena and reference their children by arena index,
// so a tree over n points allocates exactly n nodes. The splitting axis is
// not stored: it cycles with depth, axis = depth mod Dims.
type Tree struct {
	nodes   []treeNode
	root    int32
	dims    int
	visited atomic.Int64 // nodes visited by the most recently completed query
}

// treeNode is one arena slot: the point plus child arena indices.
type treeNode struct {
	pt    Point
	left  int32
	right int32
}

// noChild marks an absent child in a treeNode.
const noChild = int32(-1)

// New builds a tree indexing the given points. All points must share one
// dimensionality. The points are copied into the tree; the caller's slice
// is not retained. An empty slice builds a valid empty tree on which
// queries return ErrEmptyTree.
func New(points []Point) (*Tree, error) {
	t := &Tree{root: noChild}
	if len(points) == 0 {
		return t, nil
	}
	dims := points[0].Dims()
	if dims == 0 {
		return nil, errors.New("kdpart: points must have at least one dimension")
	}
	for i, p := range points {
		if p.Dims() != dims {
			return nil, fmt.Errorf("kdpart: point %d has %d dims, want %d", i, p.Dims(), dims)
		}
	}
	t.dims = dims
	t.nodes = make([]treeNode, len(points))
	for i, p := range points {
		t.nodes[i] = treeNode{pt: p, left: noChild, right: noChild}
	}
	t.root = t.build(0, len(points), 0)
	return t, nil
}

// NewFromFunc builds a tree over n points produced by successive calls to
// gen. gen is invoked exactly n times, in order, from the calling goroutine.
func NewFromFunc(gen func() Point, n int) (*Tree, error) {
	if n < 0 {
		return nil, fmt.Errorf("kdpart: point count must be >= 0, got %d", n)
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = gen()
	}
	return New(points)
}

// build arranges nodes[begin:end) into a subtree split on the given axis
// and returns the arena index of its root, or noChild for an empty range.
// The median element ends up at the middle of the range, coordinates no
// greater than it to its left and no smaller to its right, so the tree is
// balanced regardless of input order.
func (t *Tree) build(begin, end, axis int) int32 {
	if end <= begin {
		return noChild
	}
	mid := begin + (end-begin)/2
	t.selectNth(begin, end, mid, axis)
	next := (axis + 1) % t.dims
	t.nodes[mid].left = t.build(begin, mid, next)
	t.nodes[mid].right = t.build(mid+1, end, next)
	return int32(mid)
}

// selectNth partially orders nodes[begin:end) on the given axis so that
// nodes[kth] holds the element a full sort would put there, with no element
// before it greater and no element after it smaller. Expected linear time.
func (t *Tree) selectNth(begin, end, kth, axis int) {
	for end-begin > 1 {
		p := t.partitionRange(begin, end, axis)
		switch {
		case kth < p:
			end = p
		case kth > p:
			begin = p + 1
		default:
			return
		}
	}
}

// partitionRange performs a Lomuto partition of nodes[begin:end) around a
// median-of-three pivot and returns the pivot's final index. The median of
// the three samples is moved into the last slot and the scan pivots on it;
// pivoting on the sample median keeps the selection linear on sorted and
// reverse-sorted input.
func (t *Tree) partitionRange(begin, end, axis int) int {
	mid := begin + (end-begin)/2
	last := end - 1

	if t.coord(mid, axis) < t.coord(begin, axis) {
		t.swapNodes(mid, begin)
	}
	if t.coord(last, axis) < t.coord(begin, axis) {
		t.swapNodes(last, begin)
	}
	if t.coord(last, axis) < t.coord(mid, axis) {
		t.swapNodes(last, mid)
	}
	t.swapNodes(mid, last)

	pivot := t.coord(last, axis)
	store := begin
	for i := begin; i < last; i++ {
		if t.coord(i, axis) < pivot {
			t.swapNodes(i, store)
			store++
		}
	}
	t.swapNodes(store, last)
	return store
}

func (t *Tree) coord(i, axis int) float64 { return t.nodes[i].pt.Coord(axis) }

func (t *Tree) swapNodes(i, j int) { t.nodes[i], t.nodes[j] = t.nodes[j], t.nodes[i] }

// Len returns the number of indexed points.
func (t *Tree) Len() int { return len(t.nodes) }

// Dims returns the dimensionality of the indexed points, or 0 for an empty
// tree.
func (t *Tree) Dims() int { return t.dims }

// Empty reports whether the tree holds no points.
func (t *Tree) Empty() bool { return len(t.nodes) == 0 }

// Visited returns the number of tree nodes visited by the most recently
// completed nearest-neighbor query. It is a traversal-cost diagnostic for
// single-query use; with concurrent queries in flight it reports whichever
// query finished last. Per-query counts are returned in
// [Neighborhood.Visited].
func (t *Tree) Visited() int { return int(t.visited.Load()) }
