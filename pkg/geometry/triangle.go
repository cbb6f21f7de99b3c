package geometry

import (
	"fmt"
	"math"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/material"
)

// Triangle is a flat triangle defined by three vertices, wound so that
// V1-V0 cross V2-V0 gives the outward-facing normal.
type Triangle struct {
	V0, V1, V2 core.Point
	normal     core.Vector
	bbox       core.AABB
	mat        material.Material
	emission   core.Color
}

// NewTriangle builds a Triangle, rejecting collinear (zero-area)
// vertices.
func NewTriangle(v0, v1, v2 core.Point, mat material.Material) (*Triangle, error) {
	edge1, err1 := v1.SubtractSafe(v0)
	edge2, err2 := v2.SubtractSafe(v0)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("geometry: triangle has coincident vertices")
	}
	cross := edge1.Cross(edge2)
	if cross.LengthSquared() < core.Epsilon*core.Epsilon {
		return nil, fmt.Errorf("geometry: triangle vertices are collinear")
	}
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		normal: cross.Normalize(),
		bbox:   core.NewAABBFromPoints(v0, v1, v2),
		mat:    mat,
	}, nil
}

func (t *Triangle) Material() material.Material   { return t.mat }
func (t *Triangle) Emission() core.Color          { return t.emission }
func (t *Triangle) NormalAt(core.Point) core.Vector {
	return t.normal
}

func (t *Triangle) BoundingBox() (core.AABB, bool) {
	return t.bbox, true
}

// Intersect implements the Möller-Trumbore algorithm with a strict
// barycentric sign test: u, v and w=1-u-v must all be strictly positive,
// so a point sitting exactly on an edge is a miss (spec's
// "strict sign test", in contrast to Polygon's s[i]==0 tolerance).
func (t *Triangle) Intersect(ray core.Ray, maxDistance float64) []core.Intersection {
	edge1, err1 := t.V1.SubtractSafe(t.V0)
	edge2, err2 := t.V2.SubtractSafe(t.V0)
	if err1 != nil || err2 != nil {
		return nil
	}

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < core.Epsilon {
		return nil
	}

	f := 1.0 / a
	s, err := ray.Origin.SubtractSafe(t.V0)
	if err != nil {
		s = core.Vector{}
	}
	u := f * s.Dot(h)
	if u <= 0.0 || u >= 1.0 {
		return nil
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v <= 0.0 || u+v >= 1.0 {
		return nil
	}

	param := f * edge2.Dot(q)
	if param <= core.Epsilon || param > maxDistance {
		return nil
	}

	return []core.Intersection{{Object: t, Point: ray.At(param), T: param}}
}
