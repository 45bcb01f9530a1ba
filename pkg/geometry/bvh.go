package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHOptions controls BVH construction
type BVHOptions struct {
	NumBuckets     int  // SAH buckets per axis
	MaxPrimsInNode int  // Nodes larger than this are always split
	HoistCompounds bool // Replace compound primitives with their components
}

// DefaultBVHOptions returns the standard build settings
func DefaultBVHOptions() BVHOptions {
	return BVHOptions{
		NumBuckets:     32,
		MaxPrimsInNode: 4,
		HoistCompounds: true,
	}
}

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Interior nodes have both children; leaves have a non-empty Primitives scene.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Primitives  *Scene
}

// IsLeaf reports whether the node stores primitives directly
func (n *BVHNode) IsLeaf() bool {
	return n.Primitives != nil
}

// BVHStats describes the shape of a built tree
type BVHStats struct {
	Primitives  int
	TotalNodes  int
	LeafNodes   int
	MaxDepth    int
	MaxLeafSize int
	AvgDepth    float64 // Mean leaf depth
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root  *BVHNode
	stats BVHStats
}

// NewBVH builds a BVH over a copy of the primitives using the surface area heuristic.
// The caller's slice is not reordered.
func NewBVH(primitives []Primitive, opts BVHOptions) (*BVH, error) {
	if len(primitives) == 0 {
		return nil, fmt.Errorf("%w: cannot build a BVH over an empty scene", core.ErrInvalidConfiguration)
	}
	if opts.NumBuckets < 2 {
		return nil, fmt.Errorf("%w: BVH needs at least 2 buckets, got %d", core.ErrInvalidConfiguration, opts.NumBuckets)
	}
	if opts.MaxPrimsInNode < 1 {
		return nil, fmt.Errorf("%w: BVH leaf size must be positive, got %d", core.ErrInvalidConfiguration, opts.MaxPrimsInNode)
	}

	var work []Primitive
	if opts.HoistCompounds {
		work = Flatten(primitives)
	} else {
		work = make([]Primitive, len(primitives))
		copy(work, primitives)
	}

	b := &bvhBuilder{
		opts:    opts,
		buckets: make([]bucket, opts.NumBuckets),
		costs:   make([]float64, opts.NumBuckets-1),
	}
	root := b.build(work, 0)

	b.stats.Primitives = len(work)
	if b.stats.LeafNodes > 0 {
		b.stats.AvgDepth /= float64(b.stats.LeafNodes)
	}

	return &BVH{Root: root, stats: b.stats}, nil
}

// Hit tests if a ray intersects any primitive in the BVH
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return bvh.Root.hit(ray, rayT)
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.Root.BoundingBox
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	return bvh.stats
}

func (n *BVHNode) hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.BoundingBox.HitBy(ray, rayT) {
		return nil, false
	}

	if n.IsLeaf() {
		return n.Primitives.Hit(ray, rayT)
	}

	if leftHit, ok := n.Left.hit(ray, rayT); ok {
		// Only something closer than the left hit can replace it
		if rightHit, ok := n.Right.hit(ray, core.NewInterval(rayT.Min, leftHit.T)); ok {
			return rightHit, true
		}
		return leftHit, true
	}

	return n.Right.hit(ray, rayT)
}

type bucket struct {
	count int
	bbox  core.AABB
}

type bvhBuilder struct {
	opts    BVHOptions
	buckets []bucket
	costs   []float64
	stats   BVHStats
}

func (b *bvhBuilder) build(prims []Primitive, depth int) *BVHNode {
	if len(prims) == 1 {
		return b.leaf(prims, depth)
	}

	nodeBox := core.EmptyAABB
	centroidBox := core.EmptyAABB
	for _, p := range prims {
		box := p.BoundingBox()
		nodeBox = nodeBox.Merge(box)
		centroidBox = centroidBox.MergePoint(box.Centroid())
	}

	bestAxis, bestBucket, bestCost := -1, 0, math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		extent := centroidBox.Axis(axis)
		if !(extent.Size() > 0) {
			continue
		}

		bucket, cost := b.bestSplit(prims, axis, extent)
		if cost < bestCost {
			bestAxis, bestBucket, bestCost = axis, bucket, cost
		}
	}

	// All centroids coincide
	if bestAxis == -1 {
		return b.leaf(prims, depth)
	}

	// Relative cost of splitting versus intersecting every primitive here
	leafCost := float64(len(prims))
	splitCost := bestCost / nodeBox.SurfaceArea()
	if len(prims) <= b.opts.MaxPrimsInNode && !(splitCost < leafCost) {
		return b.leaf(prims, depth)
	}

	extent := centroidBox.Axis(bestAxis)
	mid := partition(prims, func(p Primitive) bool {
		return b.bucketIndex(p.BoundingBox().Centroid().Axis(bestAxis), extent) <= bestBucket
	})

	b.stats.TotalNodes++
	left := b.build(prims[:mid], depth+1)
	right := b.build(prims[mid:], depth+1)

	return &BVHNode{
		BoundingBox: left.BoundingBox.Merge(right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// bestSplit returns the lowest-cost split position along one axis and its
// unnormalized SAH cost. Splits that leave a side empty are skipped.
func (b *bvhBuilder) bestSplit(prims []Primitive, axis int, extent core.Interval) (int, float64) {
	for i := range b.buckets {
		b.buckets[i] = bucket{bbox: core.EmptyAABB}
	}
	for _, p := range prims {
		box := p.BoundingBox()
		i := b.bucketIndex(box.Centroid().Axis(axis), extent)
		b.buckets[i].count++
		b.buckets[i].bbox = b.buckets[i].bbox.Merge(box)
	}

	// Forward sweep: costs[s] holds the left part for buckets [0, s]
	n := len(b.buckets)
	leftCounts := make([]int, n-1)
	leftBox, leftCount := core.EmptyAABB, 0
	for s := 0; s < n-1; s++ {
		leftBox = leftBox.Merge(b.buckets[s].bbox)
		leftCount += b.buckets[s].count
		leftCounts[s] = leftCount
		b.costs[s] = leftBox.SurfaceArea() * float64(leftCount)
	}

	// Backward sweep adds the right part for buckets (s, n)
	rightBox, rightCount := core.EmptyAABB, 0
	for s := n - 2; s >= 0; s-- {
		rightBox = rightBox.Merge(b.buckets[s+1].bbox)
		rightCount += b.buckets[s+1].count
		if leftCounts[s] == 0 || rightCount == 0 {
			b.costs[s] = math.Inf(1)
			continue
		}
		b.costs[s] += rightBox.SurfaceArea() * float64(rightCount)
	}

	best, bestCost := 0, math.Inf(1)
	for s, cost := range b.costs {
		if cost < bestCost {
			best, bestCost = s, cost
		}
	}
	return best, bestCost
}

// bucketIndex maps a centroid coordinate to a bucket; the upper end falls in the last bucket
func (b *bvhBuilder) bucketIndex(c float64, extent core.Interval) int {
	n := len(b.buckets)
	i := int(float64(n) * (c - extent.Min) / extent.Size())
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (b *bvhBuilder) leaf(prims []Primitive, depth int) *BVHNode {
	b.stats.TotalNodes++
	b.stats.LeafNodes++
	b.stats.AvgDepth += float64(depth)
	b.stats.MaxDepth = max(b.stats.MaxDepth, depth)
	b.stats.MaxLeafSize = max(b.stats.MaxLeafSize, len(prims))

	scene := NewScene(prims...)
	return &BVHNode{BoundingBox: scene.BoundingBox(), Primitives: scene}
}

// partition reorders prims in place so that elements satisfying left come first,
// returning the index of the first element that does not
func partition(prims []Primitive, left func(Primitive) bool) int {
	i, j := 0, len(prims)-1
	for {
		for i <= j && left(prims[i]) {
			i++
		}
		for i <= j && !left(prims[j]) {
			j--
		}
		if i >= j {
			return i
		}
		prims[i], prims[j] = prims[j], prims[i]
		i++
		j--
	}
}
