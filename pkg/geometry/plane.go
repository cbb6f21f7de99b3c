package geometry

import (
	"math"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/material"
)

// Plane is an infinite plane defined by a point on the plane and a unit
// normal. Infinite planes report no bounding box (see core.Intersectable)
// and are routed around the BVH by core.NewRoot.
type Plane struct {
	Point    core.Point
	Normal   core.Vector
	mat      material.Material
	emission core.Color
}

// NewPlane builds a Plane, normalizing the given normal.
func NewPlane(point core.Point, normal core.Vector, mat material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), mat: mat}
}

func (p *Plane) Material() material.Material { return p.mat }
func (p *Plane) Emission() core.Color        { return p.emission }
func (p *Plane) NormalAt(core.Point) core.Vector {
	return p.Normal
}

// BoundingBox reports that a plane has no finite extent.
func (p *Plane) BoundingBox() (core.AABB, bool) {
	return core.AABB{}, false
}

// Intersect solves (P0 - O)·n = t(D·n) for t.
func (p *Plane) Intersect(ray core.Ray, maxDistance float64) []core.Intersection {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < core.Epsilon {
		return nil
	}
	toPlane, err := p.Point.SubtractSafe(ray.Origin)
	var numerator float64
	if err != nil {
		numerator = 0
	} else {
		numerator = toPlane.Dot(p.Normal)
	}
	t := numerator / denom
	if t <= core.Epsilon || t > maxDistance {
		return nil
	}
	return []core.Intersection{{Object: p, Point: ray.At(t), T: t}}
}
