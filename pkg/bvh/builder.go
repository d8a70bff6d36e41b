package bvh

import (
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// splitCandidate is the best split found along a single axis while
// evaluating the SAH bucket costs.
type splitCandidate[T xmath.Real] struct {
	axis     int
	position T
	cost     T
}

// bucket accumulates the primitives whose centroid falls within one SAH
// bin along the axis currently under evaluation.
type bucket[T xmath.Real] struct {
	count int
	aabb  core.AABB[T]
}

// builder holds the mutable state used while constructing a BVH: the
// primitive index permutation and the flat node array being filled in.
// It is discarded once Build returns.
type builder[T xmath.Real, B core.Bounded[T]] struct {
	config    Config[T]
	items     []B
	indices   []int
	nodes     []Node[T]
	nodesUsed int
}

// Build constructs a BVH over items using the Surface Area Heuristic. It
// returns an error only if config is invalid; an empty items slice yields
// an empty BVH whose queries always report no intersection.
func Build[T xmath.Real, B core.Bounded[T]](config Config[T], items []B) (*BVH[T], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &BVH[T]{}, nil
	}

	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = i
	}

	b := &builder[T, B]{
		config:  config,
		items:   items,
		indices: indices,
		// A binary tree over n leaves has at most 2n-1 nodes; allocate the
		// worst case up front so node indices never move during the build.
		nodes: make([]Node[T], 2*len(items)-1),
	}
	b.nodes[0] = Node[T]{LeftChild: 0, Count: len(items)}
	b.nodesUsed = 1

	b.updateBounds(0)
	depth := b.subdivide(0, 0)

	return &BVH[T]{
		Nodes:   b.nodes[:b.nodesUsed],
		Indices: b.indices,
		Depth:   depth,
	}, nil
}

// updateBounds recomputes the AABB of a node from the primitives it
// currently owns (valid for both leaves and freshly split internal nodes,
// before their children take over the range).
func (b *builder[T, B]) updateBounds(index int) {
	node := &b.nodes[index]
	box := core.EmptyAABB[T]()
	for i := 0; i < node.Count; i++ {
		shapeIndex := b.indices[node.LeftChild+i]
		box = core.Union(box, b.items[shapeIndex].AABB())
	}
	node.AABB = box
}

// subdivide recursively splits a node using the best SAH candidate found
// across all three axes, falling back to a leaf whenever splitting would
// not reduce expected traversal cost. It returns the depth of the deepest
// leaf produced under index.
func (b *builder[T, B]) subdivide(index, depth int) int {
	node := &b.nodes[index]

	if node.Count <= b.config.MaxShapesPerNode || depth >= b.config.MaxDepth {
		return depth
	}

	best, found := b.findBestSplit(index)
	if !found {
		return depth
	}

	leafCost := T(node.Count) * b.config.IntersectCost
	if best.cost >= leafCost {
		return depth
	}

	// Partition in place around the chosen axis/position: primitives whose
	// centroid falls left of the split accumulate at the front, the rest at
	// the back. Order within each half is irrelevant.
	left := node.LeftChild
	right := left + node.Count - 1
	for left <= right {
		shapeIndex := b.indices[left]
		centroid := b.items[shapeIndex].AABB().Centroid()
		if centroid.Component(best.axis) < best.position {
			left++
		} else {
			b.indices[left], b.indices[right] = b.indices[right], b.indices[left]
			right--
		}
	}
	leftCount := left - node.LeftChild

	if leftCount == 0 || leftCount == node.Count {
		return depth
	}

	leftChildIndex := b.nodesUsed
	b.nodesUsed++
	rightChildIndex := b.nodesUsed
	b.nodesUsed++

	b.nodes[leftChildIndex] = Node[T]{LeftChild: node.LeftChild, Count: leftCount}
	b.nodes[rightChildIndex] = Node[T]{LeftChild: left, Count: node.Count - leftCount}

	node.LeftChild = leftChildIndex
	node.Count = 0

	b.updateBounds(leftChildIndex)
	b.updateBounds(rightChildIndex)

	leftDepth := b.subdivide(leftChildIndex, depth+1)
	rightDepth := b.subdivide(rightChildIndex, depth+1)
	return max(leftDepth, rightDepth)
}

// findBestSplit evaluates SAH bucket costs along each axis and returns the
// cheapest split found, or found=false if no axis has positive extent.
func (b *builder[T, B]) findBestSplit(index int) (splitCandidate[T], bool) {
	node := &b.nodes[index]
	parentSA := node.AABB.SurfaceArea()
	if parentSA <= 0 {
		return splitCandidate[T]{}, false
	}

	buckets := b.config.SAHBuckets
	var best splitCandidate[T]
	found := false

	for axis := 0; axis < 3; axis++ {
		axisMin := node.AABB.Min.Component(axis)
		extent := node.AABB.Max.Component(axis) - axisMin
		if extent <= 0 {
			continue
		}

		bins := make([]bucket[T], buckets)
		for i := 0; i < buckets; i++ {
			bins[i].aabb = core.EmptyAABB[T]()
		}

		for i := 0; i < node.Count; i++ {
			shapeIndex := b.indices[node.LeftChild+i]
			shapeAABB := b.items[shapeIndex].AABB()
			centroid := shapeAABB.Centroid().Component(axis)

			k := int(xmath.Max(T(0), (centroid-axisMin)/extent*T(buckets)))
			if k >= buckets {
				k = buckets - 1
			}
			bins[k].count++
			bins[k].aabb = core.Union(bins[k].aabb, shapeAABB)
		}

		for split := 1; split < buckets; split++ {
			leftCount, rightCount := 0, 0
			leftBox, rightBox := core.EmptyAABB[T](), core.EmptyAABB[T]()
			for i := 0; i < split; i++ {
				if bins[i].count > 0 {
					leftCount += bins[i].count
					leftBox = core.Union(leftBox, bins[i].aabb)
				}
			}
			for i := split; i < buckets; i++ {
				if bins[i].count > 0 {
					rightCount += bins[i].count
					rightBox = core.Union(rightBox, bins[i].aabb)
				}
			}
			if leftCount == 0 || rightCount == 0 {
				continue
			}

			cost := b.config.TraverseCost +
				(leftBox.SurfaceArea()/parentSA)*T(leftCount)*b.config.IntersectCost +
				(rightBox.SurfaceArea()/parentSA)*T(rightCount)*b.config.IntersectCost

			if !found || cost < best.cost {
				best = splitCandidate[T]{
					axis:     axis,
					position: axisMin + extent*T(split)/T(buckets),
					cost:     cost,
				}
				found = true
			}
		}
	}

	return best, found
}
