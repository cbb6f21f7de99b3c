package core

import "sort"

// MaxObjectsPerLeaf and MaxDepthBVH bound the recursive SAH split (spec
// §4.3): a node with this many or fewer objects, or at this depth, always
// becomes a leaf regardless of split cost.
const (
	MaxObjectsPerLeaf = 4
	MaxDepthBVH       = 20
)

// BVHNode is either a leaf (Leaf set, both children nil) or an internal
// node (both children set, Leaf nil). Every node caches its own bounding
// box, computed bottom-up at build time.
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Leaf        Intersectable
}

// BVH is a Surface-Area-Heuristic bounding volume hierarchy built once
// over a set of finite objects. Traversal is pure and re-entrant: it
// mutates no state, so a built BVH can be queried concurrently by any
// number of worker goroutines.
type BVH struct {
	Root *BVHNode
}

// NewBVH builds a BVH over the given objects. Every object must report a
// finite bounding box; route unbounded objects (infinite planes) around
// the BVH before calling this (see NewRoot).
func NewBVH(objects []Intersectable) *BVH {
	if len(objects) == 0 {
		return &BVH{}
	}
	// Copy so recursive sorting never mutates the caller's slice.
	owned := make([]Intersectable, len(objects))
	copy(owned, objects)
	return &BVH{Root: buildBVHNode(owned, 0)}
}

func buildBVHNode(objects []Intersectable, depth int) *BVHNode {
	box := unionBoxes(objects)
	n := len(objects)

	if n <= MaxObjectsPerLeaf || depth >= MaxDepthBVH {
		return newLeaf(objects, box)
	}

	axis := box.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		return centroidAxis(objects[i], axis) < centroidAxis(objects[j], axis)
	})

	splitIndex, splitCost, ok := bestSAHSplit(objects)
	if !ok || splitCost >= box.SurfaceArea()*float64(n) {
		return newLeaf(objects, box)
	}

	left := buildBVHNode(objects[:splitIndex], depth+1)
	right := buildBVHNode(objects[splitIndex:], depth+1)
	return &BVHNode{BoundingBox: box, Left: left, Right: right}
}

// bestSAHSplit evaluates spec §4.3's cost function
// C(i) = SA(B_L(i))*i + SA(B_R(i))*(n-i) for every split index i in
// [1, n), using O(n) prefix/suffix bounding-box sweeps rather than
// recomputing unions per candidate split. Ties break toward the lowest i
// because strict "<" only replaces the running best on a strict
// improvement.
func bestSAHSplit(objects []Intersectable) (index int, cost float64, ok bool) {
	n := len(objects)
	if n < 2 {
		return 0, 0, false
	}

	leftBoxes := make([]AABB, n)
	running, _ := objects[0].BoundingBox()
	leftBoxes[0] = running
	for i := 1; i < n; i++ {
		b, _ := objects[i].BoundingBox()
		running = running.Union(b)
		leftBoxes[i] = running
	}

	rightBoxes := make([]AABB, n)
	running, _ = objects[n-1].BoundingBox()
	rightBoxes[n-1] = running
	for i := n - 2; i >= 0; i-- {
		b, _ := objects[i].BoundingBox()
		running = running.Union(b)
		rightBoxes[i] = running
	}

	bestCost := 0.0
	bestIndex := -1
	for i := 1; i < n; i++ {
		c := leftBoxes[i-1].SurfaceArea()*float64(i) + rightBoxes[i].SurfaceArea()*float64(n-i)
		if bestIndex == -1 || c < bestCost {
			bestCost = c
			bestIndex = i
		}
	}
	if bestIndex == -1 {
		return 0, 0, false
	}
	return bestIndex, bestCost, true
}

func centroidAxis(obj Intersectable, axis int) float64 {
	box, _ := obj.BoundingBox()
	center := box.Center()
	switch axis {
	case 0:
		return center.X()
	case 1:
		return center.Y()
	default:
		return center.Z()
	}
}

func unionBoxes(objects []Intersectable) AABB {
	box, _ := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		b, _ := obj.BoundingBox()
		box = box.Union(b)
	}
	return box
}

// newLeaf wraps a single object directly, or a multi-object group in a
// FlatComposite that intersects each child in turn (spec §4.3's leaf
// policy).
func newLeaf(objects []Intersectable, box AABB) *BVHNode {
	if len(objects) == 1 {
		return &BVHNode{BoundingBox: box, Leaf: objects[0]}
	}
	return &BVHNode{BoundingBox: box, Leaf: NewFlatComposite(objects...)}
}

// BoundingBox implements Intersectable: the whole BVH's extent is its
// root's box.
func (bvh *BVH) BoundingBox() (AABB, bool) {
	if bvh.Root == nil {
		return AABB{}, false
	}
	return bvh.Root.BoundingBox, true
}

// Intersect implements Intersectable via recursive slab-gated descent
// (spec §4.3 traversal): a node whose cached box misses the ray contributes
// nothing; otherwise both children are visited and their hits concatenated.
func (bvh *BVH) Intersect(ray Ray, maxDistance float64) []Intersection {
	if bvh.Root == nil {
		return nil
	}
	return bvh.Root.intersect(ray, maxDistance)
}

func (node *BVHNode) intersect(ray Ray, maxDistance float64) []Intersection {
	if !node.BoundingBox.Hit(ray, maxDistance) {
		return nil
	}
	if node.Leaf != nil {
		return node.Leaf.Intersect(ray, maxDistance)
	}
	var hits []Intersection
	hits = append(hits, node.Left.intersect(ray, maxDistance)...)
	hits = append(hits, node.Right.intersect(ray, maxDistance)...)
	return hits
}

// Stats reports read-only, diagnostic-only metrics about the tree shape.
type Stats struct {
	NodeCount            int
	LeafCount            int
	InternalCount        int
	MaxDepth             int
	AvgPrimitivesPerLeaf float64
}

// Stats walks the tree and summarizes it. Never used by traversal itself.
func (bvh *BVH) Stats() Stats {
	var s Stats
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &s)
	}
	if s.LeafCount > 0 {
		s.AvgPrimitivesPerLeaf /= float64(s.LeafCount)
	}
	return s
}

func collectStats(node *BVHNode, depth int, s *Stats) {
	s.NodeCount++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	if node.Leaf != nil {
		s.LeafCount++
		s.AvgPrimitivesPerLeaf += float64(leafSize(node.Leaf))
		return
	}
	s.InternalCount++
	collectStats(node.Left, depth+1, s)
	collectStats(node.Right, depth+1, s)
}

func leafSize(obj Intersectable) int {
	if composite, ok := obj.(*FlatComposite); ok {
		return len(composite.Children)
	}
	return 1
}
