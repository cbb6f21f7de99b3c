package core

import "testing"

func TestPoint_SubtractSafe_CoincidentReturnsError(t *testing.T) {
	p := NewPoint(1, 1, 1)
	if _, err := p.SubtractSafe(p); err == nil {
		t.Error("expected error subtracting a point from itself")
	}
}

func TestPoint_AddSubtractRoundTrip(t *testing.T) {
	origin := NewPoint(0, 0, 0)
	v := MustVector(1, 2, 3)
	moved := origin.Add(v)
	back := moved.Subtract(origin)
	if back != v {
		t.Errorf("expected round-trip vector %v, got %v", v, back)
	}
}

func TestPoint_MinMax(t *testing.T) {
	a := NewPoint(1, -2, 3)
	b := NewPoint(-1, 2, 0)
	min := a.Min(b)
	max := a.Max(b)
	if min.X() != -1 || min.Y() != -2 || min.Z() != 0 {
		t.Errorf("unexpected min: %v", min)
	}
	if max.X() != 1 || max.Y() != 2 || max.Z() != 3 {
		t.Errorf("unexpected max: %v", max)
	}
}
