package geometry

import (
	"fmt"
	"math"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/material"
)

// Cylinder is a finite cylinder between BaseCenter and TopCenter, with an
// optional pair of circular end caps.
type Cylinder struct {
	BaseCenter core.Point
	TopCenter  core.Point
	Radius     float64
	Capped     bool
	mat        material.Material
	emission   core.Color

	axis   core.Vector
	height float64
}

// NewCylinder builds a Cylinder, rejecting a non-positive radius or a
// degenerate (zero-height) axis.
func NewCylinder(baseCenter, topCenter core.Point, radius float64, capped bool, mat material.Material) (*Cylinder, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("geometry: cylinder radius must be positive, got %g", radius)
	}
	axisVector, err := topCenter.SubtractSafe(baseCenter)
	if err != nil {
		return nil, fmt.Errorf("geometry: cylinder base and top centers coincide")
	}
	return &Cylinder{
		BaseCenter: baseCenter,
		TopCenter:  topCenter,
		Radius:     radius,
		Capped:     capped,
		mat:        mat,
		axis:       axisVector.Normalize(),
		height:     axisVector.Length(),
	}, nil
}

func (c *Cylinder) Material() material.Material { return c.mat }
func (c *Cylinder) Emission() core.Color        { return c.emission }

// NormalAt returns the outward normal at a point assumed to lie on either
// the side wall or one of the caps.
func (c *Cylinder) NormalAt(p core.Point) core.Vector {
	toPoint, err := p.SubtractSafe(c.BaseCenter)
	if err != nil {
		return c.axis.Negate()
	}
	h := toPoint.Dot(c.axis)
	if h <= core.Epsilon {
		return c.axis.Negate()
	}
	if h >= c.height-core.Epsilon {
		return c.axis
	}
	axisPoint := c.BaseCenter.Add(c.axis.Scale(h))
	radial, err := p.SubtractSafe(axisPoint)
	if err != nil {
		return c.axis
	}
	return radial.Normalize()
}

// BoundingBox returns the box of the base-to-top segment expanded by the
// radius along every axis not parallel to the cylinder's own axis.
func (c *Cylinder) BoundingBox() (core.AABB, bool) {
	segment := core.NewAABB(c.BaseCenter, c.TopCenter)
	const parallelThreshold = 0.9999
	axis := c.axis.Raw()
	expand := [3]float64{c.Radius, c.Radius, c.Radius}
	for i := 0; i < 3; i++ {
		if math.Abs(axis[i]) > parallelThreshold {
			expand[i] = 0
		}
	}
	pad := core.NewPoint(expand[0], expand[1], expand[2])
	min := core.NewPoint(segment.Min.X()-pad.X(), segment.Min.Y()-pad.Y(), segment.Min.Z()-pad.Z())
	max := core.NewPoint(segment.Max.X()+pad.X(), segment.Max.Y()+pad.Y(), segment.Max.Z()+pad.Z())
	return core.NewAABB(min, max), true
}

// Intersect reports the nearer in-range side-wall intersection and, if
// capped, every end-cap intersection within range, unsorted.
func (c *Cylinder) Intersect(ray core.Ray, maxDistance float64) []core.Intersection {
	var hits []core.Intersection
	if hit, ok := c.hitBody(ray, maxDistance); ok {
		hits = append(hits, hit)
	}
	if c.Capped {
		if hit, ok := c.hitCap(ray, c.BaseCenter, maxDistance); ok {
			hits = append(hits, hit)
		}
		if hit, ok := c.hitCap(ray, c.TopCenter, maxDistance); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

func (c *Cylinder) hitBody(ray core.Ray, maxDistance float64) (core.Intersection, bool) {
	delta, err := ray.Origin.SubtractSafe(c.BaseCenter)
	if err != nil {
		delta = core.Vector{}
	}
	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	a := ray.Direction.Dot(ray.Direction) - dv*dv
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.Dot(delta) - deltaV*deltaV - c.Radius*c.Radius

	if math.Abs(a) < core.Epsilon {
		return core.Intersection{}, false
	}
	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return core.Intersection{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t <= core.Epsilon || t > maxDistance {
			continue
		}
		point := ray.At(t)
		toPoint, err := point.SubtractSafe(c.BaseCenter)
		if err != nil {
			continue
		}
		h := toPoint.Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}
		return core.Intersection{Object: c, Point: point, T: t}, true
	}
	return core.Intersection{}, false
}

func (c *Cylinder) hitCap(ray core.Ray, center core.Point, maxDistance float64) (core.Intersection, bool) {
	normal := c.axis
	if center == c.BaseCenter {
		normal = c.axis.Negate()
	}
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < core.Epsilon {
		return core.Intersection{}, false
	}
	toCenter, err := center.SubtractSafe(ray.Origin)
	if err != nil {
		return core.Intersection{}, false
	}
	t := toCenter.Dot(normal) / denom
	if t <= core.Epsilon || t > maxDistance {
		return core.Intersection{}, false
	}
	point := ray.At(t)
	fromCenter, err := point.SubtractSafe(center)
	if err != nil {
		return core.Intersection{Object: c, Point: point, T: t}, true
	}
	if fromCenter.Length() > c.Radius {
		return core.Intersection{}, false
	}
	return core.Intersection{Object: c, Point: point, T: t}, true
}
