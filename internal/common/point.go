package common

import (
	"fmt"
	"math"
	"math/rand"
)

// Point is a location in the 2D workspace.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewRandomPoint returns a point sampled uniformly inside [0,width] x [0,height].
func NewRandomPoint(rng *rand.Rand, width, height float64) Point {
	return Point{
		X: rng.Float64() * width,
		Y: rng.Float64() * height,
	}
}

// Valid reports whether both coordinates are finite numbers.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Validate returns an InvalidArgument error for op when p is not a finite coordinate.
func (p Point) Validate(op, what string) error {
	if !p.Valid() {
		return InvalidArgument(op, "%s must have two finite coordinates, got %s", what, p)
	}
	return nil
}

// Distance calculates the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Subtract returns p - other.
func (p Point) Subtract(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// MultiplyByScalar scales both coordinates.
func (p Point) MultiplyByScalar(scalar float64) Point {
	return Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Equal reports whether the points match within tol on both axes.
func (p Point) Equal(other Point, tol float64) bool {
	return math.Abs(p.X-other.X) <= tol && math.Abs(p.Y-other.Y) <= tol
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("[%.3f, %.3f]", p.X, p.Y)
}

// ClonePoints copies a point slice. A nil input yields an empty, non-nil slice.
func ClonePoints(points []Point) []Point {
	clone := make([]Point, len(points))
	copy(clone, points)
	return clone
}
