package geometry

import (
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geoerr"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// Triangle is a single triangle primitive. N0/N1/N2 are per-vertex shading
// normals used to interpolate a smooth ShadingNormal across the face;
// GeometricNormal is always the flat face normal derived from the edges.
type Triangle[T xmath.Real] struct {
	V0, V1, V2 core.Vec3[T]
	N0, N1, N2 core.Vec3[T]

	geometricNormal core.Vec3[T]
	bounds          core.AABB[T]
}

// NewTriangle creates a Triangle whose shading normal is flat, equal to
// the geometric face normal at every vertex. It rejects degenerate
// (zero-area, collinear) triangles.
func NewTriangle[T xmath.Real](v0, v1, v2 core.Vec3[T]) (Triangle[T], error) {
	n, err := faceNormal(v0, v1, v2)
	if err != nil {
		return Triangle[T]{}, err
	}
	return newTriangle(v0, v1, v2, n, n, n, n), nil
}

// NewTriangleWithNormals creates a Triangle with explicit per-vertex
// shading normals, as loaded from a mesh file.
func NewTriangleWithNormals[T xmath.Real](v0, v1, v2, n0, n1, n2 core.Vec3[T]) (Triangle[T], error) {
	n, err := faceNormal(v0, v1, v2)
	if err != nil {
		return Triangle[T]{}, err
	}
	return newTriangle(v0, v1, v2, n, n0, n1, n2), nil
}

func newTriangle[T xmath.Real](v0, v1, v2, geometricNormal, n0, n1, n2 core.Vec3[T]) Triangle[T] {
	return Triangle[T]{
		V0: v0, V1: v1, V2: v2,
		N0: n0, N1: n1, N2: n2,
		geometricNormal: geometricNormal,
		bounds:          core.UnionPoint(core.UnionPoint(core.NewAABB(v0, v0), v1), v2),
	}
}

func faceNormal[T xmath.Real](v0, v1, v2 core.Vec3[T]) (core.Vec3[T], error) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	cross := edge1.Cross(edge2)
	length := cross.Length()
	if length < xmath.Epsilon[T]() {
		return core.Vec3[T]{}, &geoerr.DegenerateGeometryError{
			Kind:   "triangle",
			Reason: "vertices are collinear or coincident",
		}
	}
	return cross.Scale(1 / length), nil
}

// AABB returns the triangle's axis-aligned bounding box.
func (t Triangle[T]) AABB() core.AABB[T] {
	return t.bounds
}

// GeometricNormal returns the triangle's flat face normal.
func (t Triangle[T]) GeometricNormal() core.Vec3[T] {
	return t.geometricNormal
}

// Intersect implements the Möller-Trumbore algorithm. The geometric normal
// reported is the flat face normal; the shading normal is the per-vertex
// normals interpolated by the hit's barycentric coordinates and
// renormalized.
func (t Triangle[T]) Intersect(ray core.Ray[T], tMax T) (core.Hit[T], bool) {
	eps := xmath.Epsilon[T]()

	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if xmath.Abs(det) < eps {
		return core.Hit[T]{}, false
	}
	invDet := 1 / det

	s := ray.Origin.Sub(t.V0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return core.Hit[T]{}, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return core.Hit[T]{}, false
	}

	dist := invDet * edge2.Dot(q)
	if dist <= eps || dist > tMax {
		return core.Hit[T]{}, false
	}

	w := 1 - u - v
	shading := t.N0.Scale(w).Add(t.N1.Scale(u)).Add(t.N2.Scale(v)).Normalize()

	return core.Hit[T]{
		Distance:        dist,
		GeometricNormal: t.geometricNormal,
		ShadingNormal:   shading,
	}, true
}
