package geometry

import (
	"fmt"
	"math"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/material"
)

// Polygon is a planar, convex polygon of three or more vertices, wound
// consistently so consecutive edges cross-product to the same normal
// direction. Unlike Triangle's strict sign test, a point sitting exactly
// on an edge (s[i]==0) counts as inside: the polygon is the N-vertex
// generalization and tolerates the boundary case a fan of strict
// triangles would split inconsistently.
type Polygon struct {
	Vertices []core.Point
	normal   core.Vector
	bbox     core.AABB
	mat      material.Material
	emission core.Color
}

// NewPolygon builds a Polygon from three or more coplanar, convex,
// consistently wound vertices.
func NewPolygon(vertices []core.Point, mat material.Material) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("geometry: polygon needs at least 3 vertices, got %d", len(vertices))
	}
	edge1, err1 := vertices[1].SubtractSafe(vertices[0])
	edge2, err2 := vertices[2].SubtractSafe(vertices[0])
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("geometry: polygon has coincident vertices")
	}
	cross := edge1.Cross(edge2)
	if cross.LengthSquared() < core.Epsilon*core.Epsilon {
		return nil, fmt.Errorf("geometry: polygon's first three vertices are collinear")
	}
	normal := cross.Normalize()

	p := &Polygon{Vertices: vertices, normal: normal, mat: mat, bbox: core.NewAABBFromPoints(vertices...)}
	if err := p.validateConvexAndPlanar(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Polygon) validateConvexAndPlanar() error {
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a, b, c := p.Vertices[i], p.Vertices[(i+1)%n], p.Vertices[(i+2)%n]
		e1, err1 := b.SubtractSafe(a)
		e2, err2 := c.SubtractSafe(b)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("geometry: polygon has coincident adjacent vertices")
		}
		// Planarity: every vertex must lie within epsilon of the plane
		// established by the first three.
		toVertex, err := a.SubtractSafe(p.Vertices[0])
		if err == nil && math.Abs(toVertex.Dot(p.normal)) > core.Epsilon*10 {
			return fmt.Errorf("geometry: polygon vertices are not coplanar")
		}
		if e1.Cross(e2).Dot(p.normal) < -core.Epsilon {
			return fmt.Errorf("geometry: polygon is not convex, or vertices are wound inconsistently")
		}
	}
	return nil
}

func (p *Polygon) Material() material.Material     { return p.mat }
func (p *Polygon) Emission() core.Color            { return p.emission }
func (p *Polygon) NormalAt(core.Point) core.Vector { return p.normal }

func (p *Polygon) BoundingBox() (core.AABB, bool) {
	return p.bbox, true
}

// Intersect solves the polygon's plane equation for t, then tests the hit
// point against every edge: s[i] = ((V[i+1]-V[i]) x (P-V[i])) · n must be
// >= 0 (not > 0) for every edge, tolerating a point that lands exactly on
// the boundary.
func (p *Polygon) Intersect(ray core.Ray, maxDistance float64) []core.Intersection {
	denom := ray.Direction.Dot(p.normal)
	if math.Abs(denom) < core.Epsilon {
		return nil
	}
	toPlane, err := p.Vertices[0].SubtractSafe(ray.Origin)
	if err != nil {
		return nil
	}
	t := toPlane.Dot(p.normal) / denom
	if t <= core.Epsilon || t > maxDistance {
		return nil
	}
	hitPoint := ray.At(t)

	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		vi, vNext := p.Vertices[i], p.Vertices[(i+1)%n]
		edge, err := vNext.SubtractSafe(vi)
		if err != nil {
			return nil
		}
		toHit, err := hitPoint.SubtractSafe(vi)
		if err != nil {
			// hitPoint coincides with a vertex: on the boundary, counts as inside.
			continue
		}
		if edge.Cross(toHit).Dot(p.normal) < -core.Epsilon {
			return nil
		}
	}

	return []core.Intersection{{Object: p, Point: hitPoint, T: t}}
}
