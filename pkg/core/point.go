package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a 3D position. Unlike Vector, the zero point is perfectly valid.
type Point struct {
	v mgl64.Vec3
}

// NewPoint builds a Point from components.
func NewPoint(x, y, z float64) Point {
	return Point{v: mgl64.Vec3{x, y, z}}
}

func (p Point) X() float64 { return p.v[0] }
func (p Point) Y() float64 { return p.v[1] }
func (p Point) Z() float64 { return p.v[2] }

func (p Point) String() string {
	return fmt.Sprintf("Point{%.6g, %.6g, %.6g}", p.v[0], p.v[1], p.v[2])
}

// Subtract returns the vector from other to p. Panics if p and other
// coincide to within Epsilon on every axis, which would produce the
// invalid zero vector; callers that
// cannot guarantee distinct points should use SubtractSafe.
func (p Point) Subtract(other Point) Vector {
	vec, err := p.SubtractSafe(other)
	if err != nil {
		panic(err)
	}
	return vec
}

// SubtractSafe is Subtract without the panic, for call sites (shadow
// feelers, degenerate triangles) where coincident points are a normal
// "no geometry here" outcome rather than a programming error.
func (p Point) SubtractSafe(other Point) (Vector, error) {
	return NewVector(p.v[0]-other.v[0], p.v[1]-other.v[1], p.v[2]-other.v[2])
}

// Add returns the point offset by a vector.
func (p Point) Add(v Vector) Point {
	return Point{v: p.v.Add(v.v)}
}

// DistanceSquared returns the squared distance between two points.
func (p Point) DistanceSquared(other Point) float64 {
	d := p.v.Sub(other.v)
	return d.Dot(d)
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return p.v.Sub(other.v).Len()
}

// Raw exposes the underlying three components.
func (p Point) Raw() [3]float64 {
	return [3]float64{p.v[0], p.v[1], p.v[2]}
}

// Min returns the component-wise minimum of two points.
func (p Point) Min(other Point) Point {
	return NewPoint(
		minFloat(p.v[0], other.v[0]),
		minFloat(p.v[1], other.v[1]),
		minFloat(p.v[2], other.v[2]),
	)
}

// Max returns the component-wise maximum of two points.
func (p Point) Max(other Point) Point {
	return NewPoint(
		maxFloat(p.v[0], other.v[0]),
		maxFloat(p.v[1], other.v[1]),
		maxFloat(p.v[2], other.v[2]),
	)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
