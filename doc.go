// Package kdpart implements a k-d tree spatial index over weighted,
// velocity-tagged points in D-dimensional space.
//
// A Tree is built once from a fixed point set and is immutable afterwards;
// any number of goroutines may query it concurrently. It serves two kinds
// of requests: branch-and-bound N-nearest-neighbor queries that report the
// neighbors along with their summed mass and the enclosing radius (the
// ingredients of a local density estimate), and recursive partitioning of
// the indexed point ids into 2^level spatially coherent buckets for load
// balancing.
//
// Basic usage:
//
//	points := []kdpart.Point{
//		kdpart.NewPoint([]float64{0, 0}, 1, 0),
//		kdpart.NewPoint([]float64{1, 0}, 1, 1),
//		kdpart.NewPoint([]float64{0, 1}, 1, 2),
//		kdpart.NewPoint([]float64{5, 5}, 1, 3),
//	}
//	tree, err := kdpart.New(points)
//	if err != nil {
//		// mixed dimensionalities
//	}
//
//	nb, err := tree.NearestN(kdpart.NewPoint([]float64{0.1, 0.1}, 1, 0), 2)
//	// nb.Best is the nearest point, nb.Mass the summed neighbor mass,
//	// nb.Radius the distance to the farthest of the 2 neighbors, and
//	// nb.Set the per-neighbor squared distances and points.
//
//	buckets, err := tree.Partition(3)
//	// buckets holds 8 slices of point ids covering the whole tree.
//
// For query-per-point workloads, NearestNBatch fans a query slice out
// across goroutines. BalanceOf reports how even a partition's buckets came
// out before a level is committed to a worker pool.
package kdpart
