// Package geometry implements the primitive shapes that can appear in a
// scene: sphere, plane, triangle, convex polygon and cylinder. Every
// primitive implements core.Intersectable plus the extra accessors a
// shader needs once it already has an Intersection in hand.
package geometry

import (
	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/material"
)

// Geometry is the capability every primitive in this package implements:
// core.Intersectable for traversal, plus the material and emission a
// shader needs and the surface normal at a point already known to lie on
// the surface. NormalAt is never called with an arbitrary point — only
// with Intersection.Point from a hit this same object produced.
type Geometry interface {
	core.Intersectable
	Material() material.Material
	Emission() core.Color
	NormalAt(p core.Point) core.Vector
}
