package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/geometry"
	"github.com/rayforge/tracer/pkg/material"
	"github.com/rayforge/tracer/pkg/scene"
)

func TestBuilder_Build_RejectsNonOrthogonalBasis(t *testing.T) {
	_, err := NewBuilder().
		WithLocation(core.NewPoint(0, 0, 0)).
		WithDirection(core.MustVector(0, 0, -1), core.MustVector(0, 0, 1)). // parallel to the view direction
		Build()
	if err == nil {
		t.Error("expected an error when up is not orthogonal to the view direction")
	}
}

func TestBuilder_Build_RejectsCoincidentLocationAndLookAt(t *testing.T) {
	p := core.NewPoint(1, 1, 1)
	_, err := NewBuilder().WithLocation(p).WithLookAt(p, core.AxisY).Build()
	if err == nil {
		t.Error("expected an error when location and look-at target coincide")
	}
}

func TestBuilder_Build_RejectsNonPositiveViewportSize(t *testing.T) {
	_, err := NewBuilder().WithViewportSize(0, 2).Build()
	if err == nil {
		t.Error("expected an error for a non-positive viewport width")
	}
}

func TestBuilder_Build_RejectsNonPositiveViewportDistance(t *testing.T) {
	_, err := NewBuilder().WithViewportDistance(-1).Build()
	if err == nil {
		t.Error("expected an error for a non-positive viewport distance")
	}
}

func TestBuilder_Build_RejectsNonPositiveResolution(t *testing.T) {
	_, err := NewBuilder().WithResolution(0, 10).Build()
	if err == nil {
		t.Error("expected an error for a non-positive resolution")
	}
}

func TestBuilder_Build_RejectsUnrecognizedRayTracerKind(t *testing.T) {
	s, err := scene.NewBuilder("empty").Build()
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewBuilder().WithRayTracer(s, "fancy").Build()
	if err == nil {
		t.Error("expected an error for an unrecognized ray tracer kind")
	}
}

func TestCamera_RayForPixel_CenterPointsStraightAhead(t *testing.T) {
	cam, err := NewBuilder().
		WithLocation(core.NewPoint(0, 0, 0)).
		WithLookAt(core.NewPoint(0, 0, -1), core.AxisY).
		WithViewportSize(2, 2).
		WithViewportDistance(1).
		WithResolution(101, 101).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	ray := cam.RayForPixel(50, 50, nil)
	if math.Abs(ray.Direction.X()) > 1e-9 || math.Abs(ray.Direction.Y()) > 1e-9 {
		t.Errorf("expected the center pixel's ray to point exactly down -Z, got %v", ray.Direction)
	}
	if ray.Direction.Z() >= 0 {
		t.Errorf("expected the ray to point away from the location toward -Z, got %v", ray.Direction)
	}
}

func TestCamera_RayForPixel_TopLeftVsBottomRightDiffer(t *testing.T) {
	cam, err := NewBuilder().
		WithLocation(core.NewPoint(0, 0, 0)).
		WithLookAt(core.NewPoint(0, 0, -1), core.AxisY).
		WithViewportSize(2, 2).
		WithViewportDistance(1).
		WithResolution(100, 100).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	topLeft := cam.RayForPixel(0, 0, nil)
	bottomRight := cam.RayForPixel(99, 99, nil)
	if topLeft.Direction.X() >= bottomRight.Direction.X() {
		t.Error("expected top-left ray to point further left than bottom-right")
	}
	if topLeft.Direction.Y() <= bottomRight.Direction.Y() {
		t.Error("expected top-left ray to point further up than bottom-right")
	}
}

func TestCamera_RayForPixel_ExactPixelCenterFormula(t *testing.T) {
	cam, err := NewBuilder().
		WithLocation(core.NewPoint(0, 0, 0)).
		WithDirection(core.MustVector(0, 0, -1), core.AxisY).
		WithViewportSize(4, 2).
		WithViewportDistance(2).
		WithResolution(4, 2).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	// Rx = 4/4 = 1, Ry = 2/2 = 1. Pixel (0,0): xi = (0-1.5)*1 = -1.5,
	// yj = -(0-0.5)*1 = 0.5. Pc_center = (0,0,-2).
	// right = to x up = (0,0,-1)x(0,1,0) = (1,0,0).
	// Pij = (0,0,-2) + (-1.5)*(1,0,0) + 0.5*(0,1,0) = (-1.5, 0.5, -2).
	ray := cam.RayForPixel(0, 0, nil)
	want := core.MustVector(-1.5, 0.5, -2).Normalize()
	const tol = 1e-9
	if math.Abs(ray.Direction.X()-want.X()) > tol ||
		math.Abs(ray.Direction.Y()-want.Y()) > tol ||
		math.Abs(ray.Direction.Z()-want.Z()) > tol {
		t.Errorf("expected pixel (0,0) direction %v, got %v", want, ray.Direction)
	}
}

func TestCamera_DepthOfField_JittersOriginWithinAperture(t *testing.T) {
	cam, err := NewBuilder().
		WithLocation(core.NewPoint(0, 0, 0)).
		WithLookAt(core.NewPoint(0, 0, -1), core.AxisY).
		WithViewportSize(2, 2).
		WithViewportDistance(1).
		WithResolution(100, 100).
		WithDepthOfField(5.0, 1.0, 8).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(1))
	ray := cam.RayForPixel(50, 50, rnd)
	if ray.Origin.Distance(core.NewPoint(0, 0, 0)) > 0.5+1e-9 {
		t.Errorf("expected the jittered origin to stay within the lens radius, got distance %f", ray.Origin.Distance(core.NewPoint(0, 0, 0)))
	}
}

// TestCamera_SeedScenario_NineRaysTwoIntersections reproduces the
// canonical viewport check: a camera at the origin looking down -Z
// with up -Y, a 3x3 viewport held one unit away and a 3x3 resolution,
// against a radius-1 sphere at (0,0,-3). Only the dead-center ray
// should pierce the sphere, entering and exiting it once each.
func TestCamera_SeedScenario_NineRaysTwoIntersections(t *testing.T) {
	cam, err := NewBuilder().
		WithLocation(core.NewPoint(0, 0, 0)).
		WithDirection(core.MustVector(0, 0, -1), core.MustVector(0, -1, 0)).
		WithViewportSize(3, 3).
		WithViewportDistance(1).
		WithResolution(3, 3).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	sphere, err := geometry.NewSphere(core.NewPoint(0, 0, -3), 1, material.New())
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			ray := cam.RayForPixel(i, j, nil)
			total += len(sphere.Intersect(ray, math.Inf(1)))
		}
	}
	if total != 2 {
		t.Errorf("expected exactly 2 intersections across all 9 rays, got %d", total)
	}
}
