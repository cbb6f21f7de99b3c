package core

// Intersectable is the single capability shared by every primitive and
// every composite (scene root, BVH node, flat group): given a ray, report
// every intersection with t in (epsilon, maxDistance]. Implementations
// never sort the result; callers that want the closest hit scan for the
// minimum positive T themselves.
//
// BoundingBox returns false for objects with no finite extent (infinite
// planes); such objects must be routed around any BVH built over a set of
// Intersectables, since a BVH cannot cull a child with unbounded volume.
type Intersectable interface {
	BoundingBox() (AABB, bool)
	Intersect(ray Ray, maxDistance float64) []Intersection
}

// Intersection records a single ray/object hit. Shading fields (normal,
// view direction, light direction) are deliberately NOT stored here — they
// are cheap to recompute and passing them as local parameters through the
// shader keeps this record an immutable, thread-local value with no
// double-dispatch back into the object that produced it beyond Object
// itself.
type Intersection struct {
	Object Intersectable
	Point  Point
	T      float64
}

// ClosestPositive scans a list of intersections (as returned by
// Intersectable.Intersect, in arbitrary order) for the one with the
// smallest positive T. Returns false if the list is empty.
func ClosestPositive(hits []Intersection) (Intersection, bool) {
	best := Intersection{}
	found := false
	for _, hit := range hits {
		if hit.T <= 0 {
			continue
		}
		if !found || hit.T < best.T {
			best = hit
			found = true
		}
	}
	return best, found
}
