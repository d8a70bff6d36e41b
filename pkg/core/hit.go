package core

import "github.com/FreddyWordingham/geodesic/pkg/xmath"

// Hit records a ray-primitive intersection: the distance along the ray and
// the surface normals at the intersection point. ShadingNormal equals
// GeometricNormal for primitives that carry no separate per-vertex normal
// data (Sphere, Plane); Triangle interpolates a distinct shading normal.
type Hit[T xmath.Real] struct {
	Distance        T
	GeometricNormal Vec3[T]
	ShadingNormal   Vec3[T]
}

// Bounded is implemented by anything that can be enclosed in an AABB, the
// capability the BVH builder requires of every primitive it partitions.
type Bounded[T xmath.Real] interface {
	AABB() AABB[T]
}

// Traceable is implemented by anything a Ray can be tested against.
// Intersect returns the closest hit with distance in (epsilon, tMax],
// or ok=false if there is none.
type Traceable[T xmath.Real] interface {
	Intersect(ray Ray[T], tMax T) (Hit[T], bool)
}
