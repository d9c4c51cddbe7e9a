package kdpart

import (
	"fmt"
	"runtime"
	"sync"
)

// NearestNBatch answers one NearestN query per element of queries, spreading
// the work across numWorkers goroutines. Result i corresponds to queries[i]
// and is identical to what a serial NearestN call would return; each query
// fills its own result set, so workers never contend.
//
// numWorkers 0 uses runtime.NumCPU(); numWorkers <= 1 runs the queries
// inline on the calling goroutine.
//
// Validation happens once up front: an empty tree returns ErrEmptyTree, and
// n < 1 or a query with the wrong dimensionality returns an error before
// any query runs.
func (t *Tree) NearestNBatch(queries []Point, n, numWorkers int) ([]*Neighborhood, error) {
	if t.Empty() {
		return nil, ErrEmptyTree
	}
	if n < 1 {
		return nil, fmt.Errorf("kdpart: neighbor count must be >= 1, got %d", n)
	}
	for i, q := range queries {
		if q.Dims() != t.dims {
			return nil, fmt.Errorf("kdpart: query %d has %d dims, want %d", i, q.Dims(), t.dims)
		}
	}
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}

	results := make([]*Neighborhood, len(queries))

	if numWorkers <= 1 || len(queries) <= 1 {
		for i := range queries {
			results[i] = t.nearestN(queries[i], n)
		}
		return results, nil
	}

	// Split queries across workers in contiguous chunks. Ranges don't
	// overlap, so writes into results need no synchronization.
	var wg sync.WaitGroup

	perWorker := (len(queries) + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > len(queries) {
			end = len(queries)
		}
		if start >= len(queries) {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = t.nearestN(queries[i], n)
			}
		}(start, end)
	}

	wg.Wait()
	return results, nil
}
