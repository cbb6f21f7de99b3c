package geometry

import (
	"fmt"
	"math"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/material"
)

// Sphere is a sphere of the given radius centered at Center.
type Sphere struct {
	Center   core.Point
	Radius   float64
	mat      material.Material
	emission core.Color
}

// NewSphere builds a Sphere, rejecting a non-positive radius.
func NewSphere(center core.Point, radius float64, mat material.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("geometry: sphere radius must be positive, got %g", radius)
	}
	return &Sphere{Center: center, Radius: radius, mat: mat}, nil
}

// WithEmission returns a copy of the sphere configured as a light emitter.
func (s *Sphere) WithEmission(c core.Color) *Sphere {
	clone := *s
	clone.emission = c
	return &clone
}

func (s *Sphere) Material() material.Material { return s.mat }
func (s *Sphere) Emission() core.Color        { return s.emission }

// NormalAt returns the outward unit normal at a point assumed to lie on
// the sphere's surface.
func (s *Sphere) NormalAt(p core.Point) core.Vector {
	return p.Subtract(s.Center).Normalize()
}

// BoundingBox returns the smallest axis-aligned box enclosing the sphere.
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := core.MustVector(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Add(r.Negate()), s.Center.Add(r)), true
}

// Intersect solves the quadratic |P + tD - C|^2 = r^2 for t, returning
// every root in (epsilon, maxDistance].
func (s *Sphere) Intersect(ray core.Ray, maxDistance float64) []core.Intersection {
	oc, err := ray.Origin.SubtractSafe(s.Center)
	var ocVec core.Vector
	if err != nil {
		// Ray origin coincides exactly with the center; treat oc as the
		// zero vector algebraically (a valid intermediate even though
		// core.Vector forbids it as a standalone value).
		ocVec = core.Vector{}
	} else {
		ocVec = oc
	}

	d := ray.Direction
	a := d.Dot(d)
	halfB := ocVec.Dot(d)
	c := ocVec.Dot(ocVec) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	var hits []core.Intersection
	for _, root := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if root > core.Epsilon && root <= maxDistance {
			hits = append(hits, core.Intersection{Object: s, Point: ray.At(root), T: root})
		}
	}
	return hits
}
