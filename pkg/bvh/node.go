package bvh

import (
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// Node is one entry in a BVH's flat node array. A node with Count > 0 is a
// leaf holding that many primitive indices starting at LeftChild within the
// BVH's index permutation; a node with Count == 0 is internal, with its
// left child at LeftChild and its right child immediately after it.
type Node[T xmath.Real] struct {
	AABB      core.AABB[T]
	LeftChild int
	Count     int
}

// IsLeaf reports whether the node holds primitives directly.
func (n Node[T]) IsLeaf() bool {
	return n.Count > 0
}
