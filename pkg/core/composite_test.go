package core

import "testing"

// infiniteMockShape reports no bounding box, standing in for a plane-like
// unbounded object when exercising NewRoot's finite/infinite partition.
type infiniteMockShape struct {
	*mockShape
}

func (m *infiniteMockShape) BoundingBox() (AABB, bool) {
	return AABB{}, false
}

func TestFlatComposite_BoundingBoxUnionsChildren(t *testing.T) {
	a := newMockShape(0, 0, 0, 0)
	b := newMockShape(1, 10, 0, 0)
	composite := NewFlatComposite(a, b)
	box, ok := composite.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box from two finite children")
	}
	if box.Min.X() > -0.5 || box.Max.X() < 10.5 {
		t.Errorf("expected union to span both children, got %+v", box)
	}
}

func TestFlatComposite_EmptyHasNoBoundingBox(t *testing.T) {
	composite := NewFlatComposite()
	if _, ok := composite.BoundingBox(); ok {
		t.Error("expected an empty composite to report no bounding box")
	}
}

func TestFlatComposite_IntersectConcatenatesChildren(t *testing.T) {
	a := newMockShape(0, 0, 0, 0)
	b := newMockShape(1, 0, 0, 5)
	composite := NewFlatComposite(a, b)
	ray := NewRay(NewPoint(0, 0, -10), AxisZ)
	hits := composite.Intersect(ray, 1000)
	if len(hits) != 2 {
		t.Fatalf("expected hits from both children, got %d", len(hits))
	}
}

func TestNewRoot_AllFiniteBuildsBVH(t *testing.T) {
	var shapes []Intersectable
	for i := 0; i < 10; i++ {
		shapes = append(shapes, newMockShape(i, float64(i), 0, 0))
	}
	root := NewRoot(shapes)
	if _, ok := root.(*BVH); !ok {
		t.Errorf("expected an all-finite object set to build a bare BVH, got %T", root)
	}
}

func TestNewRoot_AllInfiniteBuildsFlatComposite(t *testing.T) {
	objects := []Intersectable{
		&infiniteMockShape{newMockShape(0, 0, 0, 0)},
		&infiniteMockShape{newMockShape(1, 0, 0, 0)},
	}
	root := NewRoot(objects)
	if _, ok := root.(*FlatComposite); !ok {
		t.Errorf("expected an all-infinite object set to build a flat composite, got %T", root)
	}
}

func TestNewRoot_MixedPartitionsBothBranches(t *testing.T) {
	finite := newMockShape(0, 0, 0, 0)
	infinite := &infiniteMockShape{newMockShape(1, 0, 0, 0)}
	root := NewRoot([]Intersectable{finite, infinite})

	// The root composite's bounding box covers only the finite branch (the
	// unbounded one is skipped), but both objects must still be reachable
	// by traversal.
	ray := NewRay(NewPoint(0, 0, -10), AxisZ)
	hits := root.Intersect(ray, 1000)
	if len(hits) != 2 {
		t.Fatalf("expected both the finite and infinite branch to contribute a hit, got %d", len(hits))
	}
}

func TestNewRoot_Empty(t *testing.T) {
	root := NewRoot(nil)
	ray := NewRay(NewPoint(0, 0, -10), AxisZ)
	if hits := root.Intersect(ray, 1000); hits != nil {
		t.Errorf("expected no hits from an empty scene, got %v", hits)
	}
}
