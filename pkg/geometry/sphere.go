// Package geometry implements the primitive intersection routines the BVH
// dispatches to: Sphere, Plane, Triangle, and the Mesh that groups
// triangles behind an inner BVH of their own.
package geometry

import (
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geoerr"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// Sphere is a sphere primitive defined by a center and radius.
type Sphere[T xmath.Real] struct {
	Center core.Vec3[T]
	Radius T
}

// NewSphere creates a Sphere, rejecting a non-positive radius.
func NewSphere[T xmath.Real](center core.Vec3[T], radius T) (Sphere[T], error) {
	if radius <= 0 {
		return Sphere[T]{}, &geoerr.DegenerateGeometryError{
			Kind:   "sphere",
			Reason: "radius must be positive",
		}
	}
	return Sphere[T]{Center: center, Radius: radius}, nil
}

// AABB returns the sphere's axis-aligned bounding box.
func (s Sphere[T]) AABB() core.AABB[T] {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// Intersect solves the ray-sphere quadratic and returns the smaller
// positive root exceeding the numeric self-intersection guard.
func (s Sphere[T]) Intersect(ray core.Ray[T], tMax T) (core.Hit[T], bool) {
	eps := xmath.Epsilon[T]()
	oc := ray.Origin.Sub(s.Center)

	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return core.Hit[T]{}, false
	}
	sqrtDisc := xmath.Sqrt(discriminant)

	t := -halfB - sqrtDisc
	if t <= eps {
		t = -halfB + sqrtDisc
	}
	if t <= eps || t > tMax {
		return core.Hit[T]{}, false
	}

	point := ray.At(t)
	normal := point.Sub(s.Center).Scale(1 / s.Radius)
	return core.Hit[T]{Distance: t, GeometricNormal: normal, ShadingNormal: normal}, true
}
