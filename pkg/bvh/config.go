package bvh

import (
	"github.com/FreddyWordingham/geodesic/pkg/geoerr"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// Config holds the tunable parameters the builder uses to decide where to
// split and when to stop.
type Config[T xmath.Real] struct {
	// TraverseCost is the SAH weight charged for visiting an internal node.
	TraverseCost T
	// IntersectCost is the SAH weight charged per primitive test.
	IntersectCost T
	// SAHBuckets is the number of centroid bins evaluated per split axis.
	SAHBuckets int
	// MaxShapesPerNode stops subdivision once a node holds this few primitives.
	MaxShapesPerNode int
	// MaxDepth is a hard cap; nodes at this depth are forced to be leaves.
	MaxDepth int
}

// DefaultConfig returns the configuration used when a caller has no reason
// to deviate from it.
func DefaultConfig[T xmath.Real]() Config[T] {
	return Config[T]{
		TraverseCost:     T(1.0),
		IntersectCost:    T(1.25),
		SAHBuckets:       16,
		MaxShapesPerNode: 4,
		MaxDepth:         64,
	}
}

// Validate rejects a configuration the builder cannot act on.
func (c Config[T]) Validate() error {
	if c.SAHBuckets < 2 {
		return &geoerr.ConfigurationError{Field: "SAHBuckets", Value: c.SAHBuckets, Want: ">= 2"}
	}
	if c.MaxShapesPerNode < 1 {
		return &geoerr.ConfigurationError{Field: "MaxShapesPerNode", Value: c.MaxShapesPerNode, Want: ">= 1"}
	}
	if c.MaxDepth < 1 {
		return &geoerr.ConfigurationError{Field: "MaxDepth", Value: c.MaxDepth, Want: ">= 1"}
	}
	return nil
}
