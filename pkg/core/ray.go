package core

import "github.com/FreddyWordingham/geodesic/pkg/xmath"

// Ray is a half-line with unit direction, parameterised by distance t >= 0.
// InvDirection and Sign are derived from Direction at construction time so
// that AABB slab tests can run branch-lean in the hot path.
type Ray[T xmath.Real] struct {
	Origin       Vec3[T]
	Direction    Vec3[T]
	InvDirection Vec3[T]
	Sign         [3]bool
}

// NewRay constructs a Ray from an origin and a (not necessarily normalized)
// direction, normalizing it and precomputing the inverse direction and sign.
func NewRay[T xmath.Real](origin, direction Vec3[T]) Ray[T] {
	dir := direction.Normalize()
	inv := Vec3[T]{1 / dir.X, 1 / dir.Y, 1 / dir.Z}
	return Ray[T]{
		Origin:       origin,
		Direction:    dir,
		InvDirection: inv,
		Sign:         [3]bool{inv.X < 0, inv.Y < 0, inv.Z < 0},
	}
}

// At returns the point at parameter t along the ray.
func (r Ray[T]) At(t T) Vec3[T] {
	return r.Origin.Add(r.Direction.Scale(t))
}
