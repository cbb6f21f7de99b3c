package core

// FlatComposite aggregates an ordered list of Intersectables and itself
// implements Intersectable by concatenating child results. It is the
// vehicle for pre-BVH flat scenes, small multi-primitive BVH leaves, and
// the infinite-object group that sits alongside the BVH root (spec §4.4).
type FlatComposite struct {
	Children []Intersectable
}

// NewFlatComposite builds a composite over the given children.
func NewFlatComposite(children ...Intersectable) *FlatComposite {
	return &FlatComposite{Children: children}
}

// Add appends another child to the composite.
func (c *FlatComposite) Add(child Intersectable) {
	c.Children = append(c.Children, child)
}

// BoundingBox returns the union of every bounded child's box, or false if
// the composite is empty or every child is unbounded.
func (c *FlatComposite) BoundingBox() (AABB, bool) {
	var box AABB
	has := false
	for _, child := range c.Children {
		childBox, ok := child.BoundingBox()
		if !ok {
			continue
		}
		if !has {
			box = childBox
			has = true
		} else {
			box = box.Union(childBox)
		}
	}
	return box, has
}

// Intersect concatenates every child's hits.
func (c *FlatComposite) Intersect(ray Ray, maxDistance float64) []Intersection {
	var hits []Intersection
	for _, child := range c.Children {
		hits = append(hits, child.Intersect(ray, maxDistance)...)
	}
	return hits
}
