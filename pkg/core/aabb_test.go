package core

import "testing"

func TestAABB_Hit_StraightOn(t *testing.T) {
	box := NewAABB(NewPoint(-1, -1, -1), NewPoint(1, 1, 1))
	ray := NewRay(NewPoint(0, 0, -5), AxisZ)
	if !box.Hit(ray, 1000) {
		t.Error("expected ray through the center to hit the box")
	}
}

func TestAABB_Hit_Miss(t *testing.T) {
	box := NewAABB(NewPoint(-1, -1, -1), NewPoint(1, 1, 1))
	ray := NewRay(NewPoint(5, 5, -5), AxisZ)
	if box.Hit(ray, 1000) {
		t.Error("expected parallel offset ray to miss the box")
	}
}

func TestAABB_Hit_BehindOrigin(t *testing.T) {
	box := NewAABB(NewPoint(-1, -1, -1), NewPoint(1, 1, 1))
	ray := NewRay(NewPoint(0, 0, 5), AxisZ) // box is behind the ray's origin
	if box.Hit(ray, 1000) {
		t.Error("expected box entirely behind the ray origin to miss")
	}
}

func TestAABB_Hit_ParallelAxisInsideSlab(t *testing.T) {
	box := NewAABB(NewPoint(-1, -1, -1), NewPoint(1, 1, 1))
	// Ray travels along X inside the Y/Z slab.
	ray := NewRay(NewPoint(-5, 0, 0), AxisX)
	if !box.Hit(ray, 1000) {
		t.Error("expected axis-parallel ray inside the slab to hit")
	}
}

func TestAABB_Hit_ParallelAxisOutsideSlab(t *testing.T) {
	box := NewAABB(NewPoint(-1, -1, -1), NewPoint(1, 1, 1))
	ray := NewRay(NewPoint(-5, 5, 0), AxisX)
	if box.Hit(ray, 1000) {
		t.Error("expected axis-parallel ray outside the slab to miss")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewPoint(0, 0, 0), NewPoint(1, 1, 1))
	b := NewAABB(NewPoint(2, -1, 0), NewPoint(3, 0, 1))
	u := a.Union(b)
	if u.Min.X() != 0 || u.Min.Y() != -1 || u.Max.X() != 3 || u.Max.Y() != 1 {
		t.Errorf("unexpected union: %+v", u)
	}
}

func TestAABB_SurfaceAreaAndLongestAxis(t *testing.T) {
	box := NewAABB(NewPoint(0, 0, 0), NewPoint(2, 1, 4))
	want := 2.0 * (2*1 + 1*4 + 4*2)
	if got := box.SurfaceArea(); got != want {
		t.Errorf("expected surface area %f, got %f", want, got)
	}
	if axis := box.LongestAxis(); axis != 2 {
		t.Errorf("expected longest axis Z (2), got %d", axis)
	}
}

// Invariant from spec §8: bounding_box() strictly contains every returned
// intersection point within epsilon. Exercised here on the box itself:
// its corners and its center must not lie outside it.
func TestAABB_ContainsOwnCorners(t *testing.T) {
	box := NewAABB(NewPoint(-2, -3, -4), NewPoint(5, 6, 7))
	corners := []Point{box.Min, box.Max, box.Center()}
	for _, c := range corners {
		if c.X() < box.Min.X()-Epsilon || c.X() > box.Max.X()+Epsilon {
			t.Errorf("corner %v escapes box on X", c)
		}
		if c.Y() < box.Min.Y()-Epsilon || c.Y() > box.Max.Y()+Epsilon {
			t.Errorf("corner %v escapes box on Y", c)
		}
		if c.Z() < box.Min.Z()-Epsilon || c.Z() > box.Max.Z()+Epsilon {
			t.Errorf("corner %v escapes box on Z", c)
		}
	}
}
