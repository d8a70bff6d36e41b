package geometry

import (
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geoerr"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// planeExtent is the half-width of a Plane's bounding box along its
// in-plane axes, and the half-thickness along its normal. Planes are
// infinite, so this is a pragmatic bound rather than a tight one; it is
// large enough that no reasonably sized scene geometry falls outside it.
const planeExtent = 1e6

// Plane is an infinite plane defined by a point on it and a unit normal.
type Plane[T xmath.Real] struct {
	Point  core.Vec3[T]
	Normal core.Vec3[T]
}

// NewPlane creates a Plane, normalizing normal and rejecting one too close
// to zero length to normalize reliably.
func NewPlane[T xmath.Real](point, normal core.Vec3[T]) (Plane[T], error) {
	length := normal.Length()
	if length < xmath.Epsilon[T]() {
		return Plane[T]{}, &geoerr.DegenerateGeometryError{
			Kind:   "plane",
			Reason: "normal must be non-zero",
		}
	}
	return Plane[T]{Point: point, Normal: normal.Scale(1 / length)}, nil
}

// AABB returns a large bounding box enclosing the plane. It is a pragmatic
// bound rather than a tight one, so a plane mixed into a BVH with tightly
// bounded geometry costs that BVH some split quality; correctness is
// unaffected since every other primitive's AABB remains tight.
func (p Plane[T]) AABB() core.AABB[T] {
	e := core.NewVec3(T(planeExtent), T(planeExtent), T(planeExtent))
	return core.NewAABB(p.Point.Sub(e), p.Point.Add(e))
}

// Intersect solves for the ray parameter at which it crosses the plane.
// The reported normal is always the plane's own normal; it is never
// flipped to face the ray.
func (p Plane[T]) Intersect(ray core.Ray[T], tMax T) (core.Hit[T], bool) {
	denom := ray.Direction.Dot(p.Normal)
	if xmath.Abs(denom) < xmath.Epsilon[T]() {
		return core.Hit[T]{}, false
	}

	t := p.Point.Sub(ray.Origin).Dot(p.Normal) / denom
	if t <= xmath.Epsilon[T]() || t > tMax {
		return core.Hit[T]{}, false
	}

	return core.Hit[T]{Distance: t, GeometricNormal: p.Normal, ShadingNormal: p.Normal}, true
}
