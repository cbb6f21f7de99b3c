package scene

import (
	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/geometry"
	"github.com/rayforge/tracer/pkg/lights"
	"github.com/rayforge/tracer/pkg/material"
)

// NewDefaultScene builds a small showcase scene: three spheres with
// distinct finishes over a ground plane, lit by one key point light and
// a dim ambient fill.
func NewDefaultScene() (*Scene, error) {
	matte := material.New().WithDiffuse(0.8).WithAmbient(0.1)
	shiny := material.New().WithDiffuseTriple(core.Triple{R: 0.1, G: 0.2, B: 0.5}).
		WithSpecular(0.6, 80).WithAmbient(0.1)
	mirror := material.New().WithDiffuseTriple(core.Triple{R: 0.8, G: 0.8, B: 0.8}).
		WithReflection(0.6).WithSpecular(0.9, 200).WithAmbient(0.05)
	ground := material.New().WithDiffuseTriple(core.Triple{R: 0.3, G: 0.5, B: 0.3}).WithAmbient(0.15)

	return NewBuilder("default").
		AddGeometry(geometry.NewSphere(core.NewPoint(0, 0.5, -1), 0.5, matte)).
		AddGeometry(geometry.NewSphere(core.NewPoint(-1.1, 0.5, -1), 0.5, shiny)).
		AddGeometry(geometry.NewSphere(core.NewPoint(1.1, 0.5, -1), 0.5, mirror)).
		AddGeometry(geometry.NewPlane(core.NewPoint(0, 0, 0), core.AxisY, ground), nil).
		AddLight(lights.NewPointWithFalloff(core.NewPoint(5, 8, 3), core.Uniform(0.9), [3]float64{1, 0, 0.002})).
		AddLight(lights.Ambient{Intensity: core.Uniform(0.15)}).
		SetBackground(core.NewColor(0.5, 0.7, 1.0)).
		Build()
}

// NewSphereGridScene builds an n x n grid of spheres, useful for
// exercising the BVH's SAH partitioning under a large, regular object
// count.
func NewSphereGridScene(n int) (*Scene, error) {
	b := NewBuilder("spheregrid")
	spacing := 1.2
	offset := float64(n-1) * spacing / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			center := core.NewPoint(float64(i)*spacing-offset, 0.4, float64(j)*spacing-offset-3)
			t := float64(i*n+j) / float64(n*n)
			mat := material.New().
				WithDiffuseTriple(core.Triple{R: 0.2 + 0.6*t, G: 0.3, B: 0.8 - 0.6*t}).
				WithSpecular(0.4, 40).
				WithAmbient(0.1)
			b = b.AddGeometry(geometry.NewSphere(center, 0.4, mat))
		}
	}
	ground := material.New().WithDiffuseTriple(core.Triple{R: 0.4, G: 0.4, B: 0.4}).WithAmbient(0.2)
	return b.
		AddGeometry(geometry.NewPlane(core.NewPoint(0, 0, 0), core.AxisY, ground), nil).
		AddLight(lights.Directional{Direction: core.MustVector(-1, -2, -1), Intensity: core.Uniform(0.9)}).
		AddLight(lights.Ambient{Intensity: core.Uniform(0.2)}).
		SetBackground(core.NewColor(0.1, 0.1, 0.15)).
		Build()
}

// NewCornellBoxScene builds a simplified Cornell-box style enclosure:
// five axis-aligned polygon walls around a glass sphere and a metal
// sphere, lit by a single overhead spot light.
func NewCornellBoxScene() (*Scene, error) {
	red := material.New().WithDiffuseTriple(core.Triple{R: 0.65, G: 0.05, B: 0.05}).WithAmbient(0.05)
	green := material.New().WithDiffuseTriple(core.Triple{R: 0.12, G: 0.45, B: 0.15}).WithAmbient(0.05)
	white := material.New().WithDiffuseTriple(core.Triple{R: 0.73, G: 0.73, B: 0.73}).WithAmbient(0.05)
	glass := material.New().WithTransmission(0.85).WithSpecular(0.3, 200).WithAmbient(0.02)
	metal := material.New().WithDiffuseTriple(core.Triple{R: 0.7, G: 0.7, B: 0.7}).WithReflection(0.7).WithAmbient(0.05)

	const s = 2.0
	leftWall, errLeft := geometry.NewPolygon([]core.Point{
		core.NewPoint(-s, 0, -s), core.NewPoint(-s, 0, s), core.NewPoint(-s, 2*s, s), core.NewPoint(-s, 2*s, -s),
	}, red)
	rightWall, errRight := geometry.NewPolygon([]core.Point{
		core.NewPoint(s, 0, s), core.NewPoint(s, 0, -s), core.NewPoint(s, 2*s, -s), core.NewPoint(s, 2*s, s),
	}, green)
	backWall, errBack := geometry.NewPolygon([]core.Point{
		core.NewPoint(-s, 0, -s), core.NewPoint(s, 0, -s), core.NewPoint(s, 2*s, -s), core.NewPoint(-s, 2*s, -s),
	}, white)
	floor, errFloor := geometry.NewPolygon([]core.Point{
		core.NewPoint(-s, 0, -s), core.NewPoint(s, 0, -s), core.NewPoint(s, 0, s), core.NewPoint(-s, 0, s),
	}, white)
	ceiling, errCeil := geometry.NewPolygon([]core.Point{
		core.NewPoint(-s, 2*s, -s), core.NewPoint(-s, 2*s, s), core.NewPoint(s, 2*s, s), core.NewPoint(s, 2*s, -s),
	}, white)

	return NewBuilder("cornell-box").
		AddGeometry(leftWall, errLeft).
		AddGeometry(rightWall, errRight).
		AddGeometry(backWall, errBack).
		AddGeometry(floor, errFloor).
		AddGeometry(ceiling, errCeil).
		AddGeometry(geometry.NewSphere(core.NewPoint(-0.7, 0.6, -0.3), 0.6, glass)).
		AddGeometry(geometry.NewSphere(core.NewPoint(0.7, 0.5, 0.3), 0.5, metal)).
		AddLight(lights.NewSpot(core.NewPoint(0, 2*s-0.05, 0), core.AxisY.Negate(), core.Uniform(3))).
		AddLight(lights.Ambient{Intensity: core.Uniform(0.08)}).
		SetBackground(core.Black).
		Build()
}
