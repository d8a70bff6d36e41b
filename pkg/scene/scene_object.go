// Package scene assembles Sphere, Plane, Triangle and Instance primitives
// into a Scene: a top-level BVH over all of them, whose closest-hit and
// any-hit queries both dispatch to each object's own Intersect routine.
package scene

import (
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geometry"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// objectKind discriminates the closed set of object variants a Scene can
// hold. The set is fixed at compile time, so dispatch is a flat switch
// rather than a virtual call through an interface per variant.
type objectKind int

const (
	kindSphere objectKind = iota
	kindPlane
	kindTriangle
	kindInstance
)

// SceneObject is a tagged union over the four object variants a Scene may
// own directly. Exactly one of the variant fields is meaningful, selected
// by kind.
type SceneObject[T xmath.Real] struct {
	kind     objectKind
	sphere   geometry.Sphere[T]
	plane    geometry.Plane[T]
	triangle geometry.Triangle[T]
	instance *Instance[T]
}

func sphereObject[T xmath.Real](s geometry.Sphere[T]) SceneObject[T] {
	return SceneObject[T]{kind: kindSphere, sphere: s}
}

func planeObject[T xmath.Real](p geometry.Plane[T]) SceneObject[T] {
	return SceneObject[T]{kind: kindPlane, plane: p}
}

func triangleObject[T xmath.Real](tr geometry.Triangle[T]) SceneObject[T] {
	return SceneObject[T]{kind: kindTriangle, triangle: tr}
}

func instanceObject[T xmath.Real](inst *Instance[T]) SceneObject[T] {
	return SceneObject[T]{kind: kindInstance, instance: inst}
}

// AABB dispatches to the contained variant's bounding box.
func (o SceneObject[T]) AABB() core.AABB[T] {
	switch o.kind {
	case kindSphere:
		return o.sphere.AABB()
	case kindPlane:
		return o.plane.AABB()
	case kindTriangle:
		return o.triangle.AABB()
	default:
		return o.instance.AABB()
	}
}

// Intersect dispatches to the contained variant's intersection routine.
func (o SceneObject[T]) Intersect(ray core.Ray[T], tMax T) (core.Hit[T], bool) {
	switch o.kind {
	case kindSphere:
		return o.sphere.Intersect(ray, tMax)
	case kindPlane:
		return o.plane.Intersect(ray, tMax)
	case kindTriangle:
		return o.triangle.Intersect(ray, tMax)
	default:
		return o.instance.Intersect(ray, tMax)
	}
}
