// Package scene assembles a set of geometry and lights into a ready-to-
// render Scene: a BVH-accelerated root, a light list and global defaults.
package scene

import (
	"fmt"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/geometry"
	"github.com/rayforge/tracer/pkg/lights"
)

// Scene holds everything the raytracer needs to color a ray: a traversal
// root (finite objects in a BVH, infinite objects beside it), the light
// list, and the background color returned when a ray escapes the scene
// entirely.
type Scene struct {
	Name       string
	Root       core.Intersectable
	Geometry   []geometry.Geometry
	Lights     []lights.Light
	Background core.Color
}

// Builder assembles a Scene through a fluent, error-accumulating API:
// every Add* call is infallible, and the first construction error
// encountered anywhere (e.g. from a geometry constructor the caller
// forwards in) is returned by Build, never a partially built Scene.
type Builder struct {
	name       string
	objects    []geometry.Geometry
	lights     []lights.Light
	background core.Color
	err        error
}

// NewBuilder starts a scene assembly with a black background.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, background: core.Black}
}

// AddGeometry appends a primitive to the scene. Pass through a
// constructor's error directly (e.g. b.AddGeometry(geometry.NewSphere(...)))
// so the builder can record the first failure and abort assembly.
func (b *Builder) AddGeometry(g geometry.Geometry, err error) *Builder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = fmt.Errorf("scene: adding geometry: %w", err)
		return b
	}
	b.objects = append(b.objects, g)
	return b
}

// AddLight appends a light to the scene.
func (b *Builder) AddLight(l lights.Light) *Builder {
	if b.err != nil {
		return b
	}
	b.lights = append(b.lights, l)
	return b
}

// SetBackground sets the color returned for rays that hit nothing.
func (b *Builder) SetBackground(c core.Color) *Builder {
	if b.err != nil {
		return b
	}
	b.background = c
	return b
}

// Build finalizes the scene, constructing the BVH/flat-composite
// traversal root over every added geometry object. Build is idempotent:
// calling it twice rebuilds the same root from the same object list
// without mutating builder state.
func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	intersectables := make([]core.Intersectable, len(b.objects))
	for i, g := range b.objects {
		intersectables[i] = g
	}
	return &Scene{
		Name:       b.name,
		Root:       core.NewRoot(intersectables),
		Geometry:   append([]geometry.Geometry(nil), b.objects...),
		Lights:     append([]lights.Light(nil), b.lights...),
		Background: b.background,
	}, nil
}
