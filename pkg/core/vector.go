package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a 3D direction. The zero vector is not a valid Vector: every
// constructor rejects it so that downstream code (normalization, cross
// products, light directions) never has to special-case a degenerate
// direction.
type Vector struct {
	v mgl64.Vec3
}

// NewVector builds a Vector from components, failing if the result aligns
// to the zero vector.
func NewVector(x, y, z float64) (Vector, error) {
	if IsZero(x) && IsZero(y) && IsZero(z) {
		return Vector{}, fmt.Errorf("core: zero vector is not a valid Vector")
	}
	return Vector{v: mgl64.Vec3{x, y, z}}, nil
}

// MustVector is NewVector for call sites (package-level constants, literals
// derived from validated data) where a zero vector would be a programming
// error rather than bad input.
func MustVector(x, y, z float64) Vector {
	vec, err := NewVector(x, y, z)
	if err != nil {
		panic(err)
	}
	return vec
}

// Axis constants for the three coordinate directions.
var (
	AxisX = MustVector(1, 0, 0)
	AxisY = MustVector(0, 1, 0)
	AxisZ = MustVector(0, 0, 1)
)

func (v Vector) X() float64 { return v.v[0] }
func (v Vector) Y() float64 { return v.v[1] }
func (v Vector) Z() float64 { return v.v[2] }

func (v Vector) String() string {
	return fmt.Sprintf("Vector{%.6g, %.6g, %.6g}", v.v[0], v.v[1], v.v[2])
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{v: v.v.Add(other.v)}
}

// Scale returns the vector scaled by a scalar. Scaling by zero is legal
// (it produces a degenerate result that the caller, not this type, must
// guard against using) so Scale never errors.
func (v Vector) Scale(s float64) Vector {
	return Vector{v: v.v.Mul(s)}
}

// Negate returns the opposite direction.
func (v Vector) Negate() Vector {
	return Vector{v: v.v.Mul(-1)}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.v.Dot(other.v)
}

// Cross returns the cross product of two vectors.
func (v Vector) Cross(other Vector) Vector {
	return Vector{v: v.v.Cross(other.v)}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return v.v.Len()
}

// LengthSquared returns the squared magnitude, useful for comparisons that
// don't need the square root.
func (v Vector) LengthSquared() float64 {
	return v.v.Dot(v.v)
}

// Normalize returns a unit-length vector in the same direction. A Vector
// from NewVector or MustVector is never zero, so its length is positive;
// a zero result of Scale(0) or of crossing parallel vectors has no
// direction to normalize.
func (v Vector) Normalize() Vector {
	return Vector{v: v.v.Normalize()}
}

// Raw exposes the underlying three components, for callers (AABB, BVH)
// that need axis-indexed access without re-deriving X/Y/Z.
func (v Vector) Raw() [3]float64 {
	return [3]float64{v.v[0], v.v[1], v.v[2]}
}
