package geometry

import (
	"testing"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/material"
)

func TestNewCylinder_RejectsNonPositiveRadius(t *testing.T) {
	_, err := NewCylinder(core.NewPoint(0, 0, 0), core.NewPoint(0, 2, 0), 0, false, material.New())
	if err == nil {
		t.Error("expected an error for zero radius")
	}
}

func TestNewCylinder_RejectsCoincidentCenters(t *testing.T) {
	p := core.NewPoint(1, 1, 1)
	_, err := NewCylinder(p, p, 1, false, material.New())
	if err == nil {
		t.Error("expected an error for coincident base and top centers")
	}
}

func TestCylinder_Intersect_BodyStraightOn(t *testing.T) {
	cyl, err := NewCylinder(core.NewPoint(0, 0, 0), core.NewPoint(0, 2, 0), 1, false, material.New())
	if err != nil {
		t.Fatal(err)
	}
	ray := core.NewRay(core.NewPoint(0, 1, -5), core.AxisZ)
	hits := cyl.Intersect(ray, 1000)
	if len(hits) != 1 {
		t.Fatalf("expected one body hit through the midsection, got %d", len(hits))
	}
}

func TestCylinder_Intersect_MissesPastHeight(t *testing.T) {
	cyl, err := NewCylinder(core.NewPoint(0, 0, 0), core.NewPoint(0, 2, 0), 1, false, material.New())
	if err != nil {
		t.Fatal(err)
	}
	ray := core.NewRay(core.NewPoint(0, 5, -5), core.AxisZ)
	if hits := cyl.Intersect(ray, 1000); hits != nil {
		t.Errorf("expected a ray above the cylinder's height to miss the uncapped body, got %v", hits)
	}
}

func TestCylinder_Capped_HitsEndCap(t *testing.T) {
	cyl, err := NewCylinder(core.NewPoint(0, 0, 0), core.NewPoint(0, 2, 0), 1, true, material.New())
	if err != nil {
		t.Fatal(err)
	}
	ray := core.NewRay(core.NewPoint(0, -5, 0), core.AxisY)
	hits := cyl.Intersect(ray, 1000)
	if len(hits) == 0 {
		t.Fatal("expected the capped cylinder to report a base-cap hit")
	}
}

func TestCylinder_Uncapped_MissesWhereCapWouldBe(t *testing.T) {
	cyl, err := NewCylinder(core.NewPoint(0, 0, 0), core.NewPoint(0, 2, 0), 1, false, material.New())
	if err != nil {
		t.Fatal(err)
	}
	ray := core.NewRay(core.NewPoint(0, -5, 0), core.AxisY)
	if hits := cyl.Intersect(ray, 1000); hits != nil {
		t.Errorf("expected an uncapped cylinder to report no cap hit, got %v", hits)
	}
}

func TestCylinder_NormalAt_SideWallIsRadial(t *testing.T) {
	cyl, err := NewCylinder(core.NewPoint(0, 0, 0), core.NewPoint(0, 2, 0), 1, false, material.New())
	if err != nil {
		t.Fatal(err)
	}
	n := cyl.NormalAt(core.NewPoint(1, 1, 0))
	if n.X() <= 0.99 || n.Y() != 0 {
		t.Errorf("expected an outward radial normal along +X, got %v", n)
	}
}
