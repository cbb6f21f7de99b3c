package core

import "math"

// AABB is an axis-aligned bounding box. The invariant Min.i <= Max.i per
// axis is maintained by every constructor and by Union.
type AABB struct {
	Min Point
	Max Point
}

// NewAABB builds an AABB from two corners, reordering them per axis so the
// min/max invariant holds regardless of argument order.
func NewAABB(a, b Point) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// NewAABBFromPoints builds the tightest AABB containing every given point.
func NewAABBFromPoints(points ...Point) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return AABB{Min: min, Max: max}
}

// Union returns the smallest AABB containing both aabb and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Center returns the AABB's midpoint.
func (b AABB) Center() Point {
	return NewPoint(
		(b.Min.X()+b.Max.X())/2,
		(b.Min.Y()+b.Max.Y())/2,
		(b.Min.Z()+b.Max.Z())/2,
	)
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() [3]float64 {
	return [3]float64{
		b.Max.X() - b.Min.X(),
		b.Max.Y() - b.Min.Y(),
		b.Max.Z() - b.Min.Z(),
	}
}

// SurfaceArea returns 2*(dx*dy + dy*dz + dz*dx), the quantity the SAH cost
// function is built from.
func (b AABB) SurfaceArea() float64 {
	s := b.Size()
	return 2.0 * (s[0]*s[1] + s[1]*s[2] + s[2]*s[0])
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (b AABB) LongestAxis() int {
	s := b.Size()
	axis := 0
	if s[1] > s[axis] {
		axis = 1
	}
	if s[2] > s[axis] {
		axis = 2
	}
	return axis
}

// axisMin/axisMax fetch a single axis without a dozen call-site
// switch statements.
func (b AABB) axisMin(axis int) float64 { return [3]float64{b.Min.X(), b.Min.Y(), b.Min.Z()}[axis] }
func (b AABB) axisMax(axis int) float64 { return [3]float64{b.Max.X(), b.Max.Y(), b.Max.Z()}[axis] }

// Hit implements the slab test of spec §4.2: for each axis, clip the
// running [tEnter, tExit] interval against the ray's intersection with
// that axis's pair of planes. A near-parallel axis is rejected immediately
// if the ray origin lies outside the slab on that axis.
func (b AABB) Hit(ray Ray, maxDistance float64) bool {
	dir := ray.Direction.Raw()
	origin := ray.Origin.Raw()

	tEnter, tExit := 0.0, maxDistance

	for axis := 0; axis < 3; axis++ {
		min, max := b.axisMin(axis), b.axisMax(axis)
		o, d := origin[axis], dir[axis]

		if math.Abs(d) < Epsilon {
			if o < min || o > max {
				return false
			}
			continue
		}

		invD := 1.0 / d
		t1 := (min - o) * invD
		t2 := (max - o) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tEnter {
			tEnter = t1
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return false
		}
	}

	return tExit >= 0
}
