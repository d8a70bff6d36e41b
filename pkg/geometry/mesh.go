package geometry

import (
	"github.com/FreddyWordingham/geodesic/pkg/bvh"
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geoerr"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// Mesh owns a triangle array and an inner BVH over their indices. It
// satisfies core.Bounded and core.Traceable, so it can be used as a single
// primitive wherever one is expected (directly, or behind an Instance's
// placement transform). Hits are reported in the mesh's own local frame;
// any frame conversion is the caller's responsibility.
type Mesh[T xmath.Real] struct {
	triangles []Triangle[T]
	inner     *bvh.BVH[T]
}

// NewMesh builds a Mesh from a slice of triangles, constructing the inner
// BVH with the given configuration. An empty triangle slice is rejected:
// unlike a Scene, a Mesh with no geometry cannot report a meaningful AABB.
func NewMesh[T xmath.Real](config bvh.Config[T], triangles []Triangle[T]) (*Mesh[T], error) {
	if len(triangles) == 0 {
		return nil, &geoerr.DegenerateGeometryError{
			Kind:   "mesh",
			Reason: "must contain at least one triangle",
		}
	}

	inner, err := bvh.Build(config, triangles)
	if err != nil {
		return nil, err
	}

	return &Mesh[T]{triangles: triangles, inner: inner}, nil
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh[T]) TriangleCount() int {
	return len(m.triangles)
}

// Triangles returns the mesh's triangle slice, indexed the same way as the
// inner BVH's permutation. Callers must not mutate the returned slice.
func (m *Mesh[T]) Triangles() []Triangle[T] {
	return m.triangles
}

// AABB returns the bounding box of the whole mesh.
func (m *Mesh[T]) AABB() core.AABB[T] {
	return m.inner.AABB()
}

// Intersect finds the closest ray-triangle intersection within the mesh,
// delegating to the inner BVH.
func (m *Mesh[T]) Intersect(ray core.Ray[T], tMax T) (core.Hit[T], bool) {
	_, hit, ok := bvh.Intersect[T, Triangle[T]](m.inner, ray, tMax, m.triangles)
	return hit, ok
}

// IntersectAny reports whether ray hits any triangle in the mesh within
// tMax, short-circuiting on the first hit found.
func (m *Mesh[T]) IntersectAny(ray core.Ray[T], tMax T) bool {
	return bvh.IntersectAny[T, Triangle[T]](m.inner, ray, tMax, m.triangles)
}
