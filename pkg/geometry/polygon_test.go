package geometry

import (
	"testing"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/material"
)

func square(t *testing.T) *Polygon {
	t.Helper()
	poly, err := NewPolygon([]core.Point{
		core.NewPoint(-1, -1, 0),
		core.NewPoint(1, -1, 0),
		core.NewPoint(1, 1, 0),
		core.NewPoint(-1, 1, 0),
	}, material.New())
	if err != nil {
		t.Fatal(err)
	}
	return poly
}

func TestNewPolygon_RejectsTooFewVertices(t *testing.T) {
	if _, err := NewPolygon([]core.Point{core.NewPoint(0, 0, 0), core.NewPoint(1, 0, 0)}, material.New()); err == nil {
		t.Error("expected an error for fewer than 3 vertices")
	}
}

func TestNewPolygon_RejectsNonConvex(t *testing.T) {
	_, err := NewPolygon([]core.Point{
		core.NewPoint(0, 0, 0),
		core.NewPoint(2, 0, 0),
		core.NewPoint(1, 1, 0), // notch inward, breaking convexity
		core.NewPoint(2, 2, 0),
		core.NewPoint(0, 2, 0),
	}, material.New())
	if err == nil {
		t.Error("expected an error for a non-convex polygon")
	}
}

func TestPolygon_Intersect_CenterHits(t *testing.T) {
	poly := square(t)
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.AxisZ)
	hits := poly.Intersect(ray, 1000)
	if len(hits) != 1 {
		t.Fatalf("expected one hit through the square's interior, got %d", len(hits))
	}
}

// TestPolygon_Intersect_EdgeCounts exercises the design's boundary
// tolerance: a ray through a point exactly on an edge (s[i]==0) counts as
// inside, unlike Triangle's strict sign test.
func TestPolygon_Intersect_EdgeCounts(t *testing.T) {
	poly := square(t)
	ray := core.NewRay(core.NewPoint(1, 0, -5), core.AxisZ) // lands on the right edge
	if hits := poly.Intersect(ray, 1000); len(hits) != 1 {
		t.Errorf("expected a ray landing exactly on an edge to count as a hit, got %d hits", len(hits))
	}
}

func TestPolygon_Intersect_OutsideMisses(t *testing.T) {
	poly := square(t)
	ray := core.NewRay(core.NewPoint(5, 5, -5), core.AxisZ)
	if hits := poly.Intersect(ray, 1000); hits != nil {
		t.Errorf("expected a ray outside the square to miss, got %v", hits)
	}
}
