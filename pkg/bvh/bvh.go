// Package bvh implements a Bounding Volume Hierarchy built by the Surface
// Area Heuristic: a flat array of nodes over an external slice of bounded,
// traceable primitives, plus an index permutation into that slice.
package bvh

import (
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// maxStackDepth bounds the explicit traversal stack. It comfortably exceeds
// any BvhConfig.MaxDepth a caller would reasonably configure: a tree this
// deep would require more primitives than fit in memory.
const maxStackDepth = 128

// BVH is a Bounding Volume Hierarchy: a contiguous node array (root at
// index 0) and an index permutation into the primitive slice it was built
// from. A zero-value BVH (Nodes and Indices both nil) represents the BVH
// over an empty primitive set; every query against it reports no hit.
// Queries only read a built BVH, so any number of goroutines may query one
// concurrently.
type BVH[T xmath.Real] struct {
	Nodes   []Node[T]
	Indices []int
	Depth   int
}

// AABB returns the bounding box of the whole hierarchy, the union of every
// primitive it contains. It is the EmptyAABB sentinel (min +Inf, max -Inf)
// when the BVH has no nodes.
func (bvh *BVH[T]) AABB() core.AABB[T] {
	if len(bvh.Nodes) == 0 {
		return core.EmptyAABB[T]()
	}
	return bvh.Nodes[0].AABB
}

// Intersect finds the closest intersection between ray and the primitives
// in shapes at a distance no greater than tMax (pass +Inf for an
// unbounded closest-hit query), consulting only the ones whose node AABBs
// the ray can reach within the current best distance. It reports the
// index into shapes of the hit primitive, ok=false if there is none.
func Intersect[T xmath.Real, B core.Traceable[T]](bvh *BVH[T], ray core.Ray[T], tMax T, shapes []B) (int, core.Hit[T], bool) {
	if len(bvh.Nodes) == 0 {
		return 0, core.Hit[T]{}, false
	}

	var stack [maxStackDepth]int
	sp := 0
	stack[sp] = 0
	sp++

	bestIndex := -1
	var bestHit core.Hit[T]
	tBest := tMax

	for sp > 0 {
		sp--
		node := bvh.Nodes[stack[sp]]

		if _, _, ok := node.AABB.IntersectRay(ray, tBest); !ok {
			continue
		}

		if node.IsLeaf() {
			for i := 0; i < node.Count; i++ {
				shapeIndex := bvh.Indices[node.LeftChild+i]
				if hit, ok := shapes[shapeIndex].Intersect(ray, tBest); ok && (bestIndex < 0 || hit.Distance < tBest) {
					tBest = hit.Distance
					bestHit = hit
					bestIndex = shapeIndex
				}
			}
			continue
		}

		left := node.LeftChild
		right := left + 1
		leftNode := bvh.Nodes[left]
		rightNode := bvh.Nodes[right]

		tNearLeft, _, leftHit := leftNode.AABB.IntersectRay(ray, tBest)
		tNearRight, _, rightHit := rightNode.AABB.IntersectRay(ray, tBest)

		switch {
		case leftHit && rightHit:
			if tNearLeft <= tNearRight {
				sp = pushStack(stack[:], sp, right)
				sp = pushStack(stack[:], sp, left)
			} else {
				sp = pushStack(stack[:], sp, left)
				sp = pushStack(stack[:], sp, right)
			}
		case leftHit:
			sp = pushStack(stack[:], sp, left)
		case rightHit:
			sp = pushStack(stack[:], sp, right)
		}
	}

	if bestIndex < 0 {
		return 0, core.Hit[T]{}, false
	}
	return bestIndex, bestHit, true
}

// IntersectAny reports whether ray hits any primitive in shapes at a
// distance no greater than tMax, short-circuiting on the first hit found.
// Child visit order does not affect the result.
func IntersectAny[T xmath.Real, B core.Traceable[T]](bvh *BVH[T], ray core.Ray[T], tMax T, shapes []B) bool {
	if len(bvh.Nodes) == 0 {
		return false
	}

	var stack [maxStackDepth]int
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		node := bvh.Nodes[stack[sp]]

		if _, _, ok := node.AABB.IntersectRay(ray, tMax); !ok {
			continue
		}

		if node.IsLeaf() {
			for i := 0; i < node.Count; i++ {
				shapeIndex := bvh.Indices[node.LeftChild+i]
				if hit, ok := shapes[shapeIndex].Intersect(ray, tMax); ok && hit.Distance <= tMax {
					return true
				}
			}
			continue
		}

		left := node.LeftChild
		right := left + 1
		sp = pushStack(stack[:], sp, left)
		sp = pushStack(stack[:], sp, right)
	}

	return false
}

// pushStack pushes a node index onto the fixed-capacity traversal stack,
// silently dropping the push if the stack is exhausted rather than
// panicking — queries never fail.
func pushStack(stack []int, sp, nodeIndex int) int {
	if sp >= len(stack) {
		return sp
	}
	stack[sp] = nodeIndex
	sp++
	return sp
}
