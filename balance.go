package kdpart

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Balance summarizes how evenly one Partition call spread point ids across
// its buckets. Schedulers use it to pick a partition level: deepen while
// Max stays too coarse for the worker count, stop when StdDev says further
// levels only manufacture empty buckets.
type Balance struct {
	// Buckets is the total number of buckets, always a power of two.
	Buckets int

	// Occupied is the number of non-empty buckets.
	Occupied int

	// Min and Max are the smallest and largest bucket sizes.
	Min, Max int

	// Mean and StdDev are the mean and population standard deviation of
	// the bucket sizes.
	Mean, StdDev float64
}

// BalanceOf computes bucket-size statistics for the output of one Partition
// call. Zero buckets yield the zero Balance.
func BalanceOf(buckets [][]uint64) Balance {
	if len(buckets) == 0 {
		return Balance{}
	}

	sizes := make([]float64, len(buckets))
	occupied := 0
	for i, b := range buckets {
		sizes[i] = float64(len(b))
		if len(b) > 0 {
			occupied++
		}
	}

	return Balance{
		Buckets:  len(buckets),
		Occupied: occupied,
		Min:      int(floats.Min(sizes)),
		Max:      int(floats.Max(sizes)),
		Mean:     stat.Mean(sizes, nil),
		StdDev:   stat.PopStdDev(sizes, nil),
	}
}
