package kdpart

import (
	"fmt"
	"math"
)

// Neighborhood is the result of one NearestN query.
type Neighborhood struct {
	// Best is the indexed point nearest to the query.
	Best Point

	// Mass is the summed mass of all points in Set.
	Mass float64

	// Radius is the true (unsquared) distance from the query to the
	// farthest point in Set.
	Radius float64

	// Set holds the neighbors found, ascending by squared distance. It has
	// fewer than the requested n entries only when the tree holds fewer
	// than n points.
	Set *ResultSet

	// Visited is the number of tree nodes visited answering this query.
	Visited int
}

// NearestN finds the n indexed points nearest to q. Along with the
// neighbors themselves it reports the nearest one, their summed mass, and
// the search radius, which callers use directly as a local density estimate
// (summed mass over the radius-n sphere).
//
// Returns ErrEmptyTree when the tree is empty, and an error when n < 1 or
// the query dimensionality does not match the tree.
func (t *Tree) NearestN(q Point, n int) (*Neighborhood, error) {
	if err := t.checkQuery(q, n); err != nil {
		return nil, err
	}
	return t.nearestN(q, n), nil
}

// NearestList finds the n indexed points nearest to q and returns them in
// ascending distance order together with the search radius and the
// underlying result set. It fails exactly as NearestN does.
func (t *Tree) NearestList(q Point, n int) ([]Point, float64, *ResultSet, error) {
	if err := t.checkQuery(q, n); err != nil {
		return nil, 0, nil, err
	}
	nb := t.nearestN(q, n)
	return nb.Set.Points(), nb.Radius, nb.Set, nil
}

// checkQuery validates the common preconditions of the query operations.
func (t *Tree) checkQuery(q Point, n int) error {
	if t.Empty() {
		return ErrEmptyTree
	}
	if n < 1 {
		return fmt.Errorf("kdpart: neighbor count must be >= 1, got %d", n)
	}
	if q.Dims() != t.dims {
		return fmt.Errorf("kdpart: query point has %d dims, want %d", q.Dims(), t.dims)
	}
	return nil
}

// nearestN answers one validated query.
func (t *Tree) nearestN(q Point, n int) *Neighborhood {
	set := newResultSet(n)
	visited := 0
	t.nearest(t.root, q, 0, set, &visited)
	t.visited.Store(int64(visited))

	nb := &Neighborhood{Set: set, Visited: visited}
	_, nb.Best = set.At(0)
	for i := range set.entries {
		nb.Mass += set.entries[i].pt.Mass()
	}
	nb.Radius = math.Sqrt(set.worst())
	return nb
}

// nearest recursively descends from the node at arena index id, visiting
// the child on the query's side of the splitting plane first and pruning
// the far side once the set is full and the plane is provably farther than
// the current worst neighbor.
//
// There is deliberately no cutoff when an exact-distance-zero match is
// found: the query point may itself be an indexed point, and its remaining
// neighbors still have to be collected.
func (t *Tree) nearest(id int32, q Point, axis int, set *ResultSet, visited *int) {
	if id == noChild {
		return
	}
	*visited++
	node := &t.nodes[id]

	d := node.pt.DistSq(q)
	if !set.full() || d < set.worst() {
		set.add(d, &node.pt)
	}

	dx := node.pt.Coord(axis) - q.Coord(axis)
	next := (axis + 1) % t.dims

	near, far := node.right, node.left
	if dx > 0 {
		near, far = node.left, node.right
	}
	t.nearest(near, q, next, set, visited)

	if set.full() && dx*dx >= set.worst() {
		return
	}
	t.nearest(far, q, next, set, visited)
}
