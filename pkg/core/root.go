package core

// NewRoot partitions objects into finite (has a bounding box) and infinite
// (unbounded, e.g. planes) sets per spec §4.3. The BVH is built only over
// the finite set; infinite objects are wrapped in a flat composite and
// unioned with the BVH root into a two-child root composite exposed as a
// single Intersectable, since a BVH cannot cull a child with unbounded
// volume.
func NewRoot(objects []Intersectable) Intersectable {
	var finite, infinite []Intersectable
	for _, obj := range objects {
		if _, ok := obj.BoundingBox(); ok {
			finite = append(finite, obj)
		} else {
			infinite = append(infinite, obj)
		}
	}

	switch {
	case len(finite) == 0 && len(infinite) == 0:
		return NewFlatComposite()
	case len(infinite) == 0:
		return NewBVH(finite)
	case len(finite) == 0:
		return NewFlatComposite(infinite...)
	default:
		return NewFlatComposite(NewBVH(finite), NewFlatComposite(infinite...))
	}
}
