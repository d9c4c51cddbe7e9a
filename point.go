package kdpart

import (
	"fmt"
	"strings"
)

// Point is an immutable weighted point in D-dimensional space, optionally
// tagged with a velocity vector of the same dimensionality. Points carry a
// caller-assigned id so query and partition results can be mapped back to
// external records (particle arrays, database rows, and so on).
//
// The zero Point has no dimensions and is not usable; construct points with
// NewPoint or NewPointWithVelocity.
type Point struct {
	coords []float64
	vels   []float64 // nil when the point carries no velocity
	mass   float64
	id     uint64
}

// NewPoint returns a point at the given coordinates with the given mass and
// caller-assigned id. The velocity is zero in every component. The
// coordinate slice is copied; the point never aliases caller memory.
func NewPoint(coords []float64, mass float64, id uint64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{coords: c, mass: mass, id: id}
}

// NewPointWithVelocity is NewPoint with an explicit velocity vector.
// Panics if the velocity length differs from the coordinate length.
func NewPointWithVelocity(coords, velocity []float64, mass float64, id uint64) Point {
	if len(velocity) != len(coords) {
		panic(fmt.Sprintf("kdpart: velocity has %d components, coords have %d", len(velocity), len(coords)))
	}
	p := NewPoint(coords, mass, id)
	v := make([]float64, len(velocity))
	copy(v, velocity)
	p.vels = v
	return p
}

// Dims returns the dimensionality of the point.
func (p Point) Dims() int { return len(p.coords) }

// Coord returns the coordinate in the given dimension (zero based).
// Panics if i is out of range.
func (p Point) Coord(i int) float64 { return p.coords[i] }

// Vel returns the velocity component in the given dimension (zero based).
// Points built without a velocity report 0 for every in-range dimension.
// Panics if i is out of range.
func (p Point) Vel(i int) float64 {
	if p.vels == nil {
		_ = p.coords[i] // preserve the bounds check
		return 0
	}
	return p.vels[i]
}

// Mass returns the weight of the point.
func (p Point) Mass() float64 { return p.mass }

// ID returns the caller-assigned identifier.
func (p Point) ID() uint64 { return p.id }

// DistSq returns the squared Euclidean distance between the coordinates of
// p and q. q must have the same dimensionality as p.
func (p Point) DistSq(q Point) float64 {
	var sum float64
	for i := range p.coords {
		d := p.coords[i] - q.coords[i]
		sum += d * d
	}
	return sum
}

// SpeedSq returns the squared Euclidean norm of the velocity difference
// between p and q, the squared relative speed. Points without a velocity
// contribute a zero vector. q must have the same dimensionality as p.
func (p Point) SpeedSq(q Point) float64 {
	var sum float64
	for i := range p.coords {
		d := p.Vel(i) - q.Vel(i)
		sum += d * d
	}
	return sum
}

// String renders the coordinates as "(c0, c1, ...)".
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", c)
	}
	b.WriteByte(')')
	return b.String()
}
