package core

// Ray is an immutable origin + unit-length direction. Construction always
// normalizes the direction, so every Ray in the system satisfies
// R(t) = Origin + t*Direction with |Direction| == 1.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay builds a ray, normalizing direction so the unit-length invariant
// always holds.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewRayBetween builds a ray from origin toward target. Returns an error if
// the two points coincide (no direction to travel in).
func NewRayBetween(origin, target Point) (Ray, error) {
	dir, err := target.SubtractSafe(origin)
	if err != nil {
		return Ray{}, err
	}
	return NewRay(origin, dir), nil
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}
