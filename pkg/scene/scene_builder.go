package scene

import (
	"github.com/FreddyWordingham/geodesic/pkg/bvh"
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geometry"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// SceneBuilder accumulates objects before constructing their top-level
// BVH. Errors from individual Add calls are deferred to Build: the first
// error is kept and every later Add call is a no-op.
type SceneBuilder[T xmath.Real] struct {
	objects []SceneObject[T]
	err     error
}

// NewSceneBuilder returns an empty builder.
func NewSceneBuilder[T xmath.Real]() *SceneBuilder[T] {
	return &SceneBuilder[T]{}
}

// AddSphere adds a sphere primitive owned directly by the scene.
func (b *SceneBuilder[T]) AddSphere(center core.Vec3[T], radius T) *SceneBuilder[T] {
	if b.err != nil {
		return b
	}
	sphere, err := geometry.NewSphere(center, radius)
	if err != nil {
		b.err = err
		return b
	}
	b.objects = append(b.objects, sphereObject(sphere))
	return b
}

// AddPlane adds a plane primitive owned directly by the scene.
func (b *SceneBuilder[T]) AddPlane(point, normal core.Vec3[T]) *SceneBuilder[T] {
	if b.err != nil {
		return b
	}
	plane, err := geometry.NewPlane(point, normal)
	if err != nil {
		b.err = err
		return b
	}
	b.objects = append(b.objects, planeObject(plane))
	return b
}

// AddTriangle adds a standalone triangle primitive owned directly by the
// scene (as opposed to one belonging to a Mesh behind an Instance).
func (b *SceneBuilder[T]) AddTriangle(v0, v1, v2 core.Vec3[T]) *SceneBuilder[T] {
	if b.err != nil {
		return b
	}
	tri, err := geometry.NewTriangle(v0, v1, v2)
	if err != nil {
		b.err = err
		return b
	}
	b.objects = append(b.objects, triangleObject(tri))
	return b
}

// AddTriangleWithNormals adds a standalone triangle carrying explicit
// per-vertex shading normals, as loaded from a scene document.
func (b *SceneBuilder[T]) AddTriangleWithNormals(v0, v1, v2, n0, n1, n2 core.Vec3[T]) *SceneBuilder[T] {
	if b.err != nil {
		return b
	}
	tri, err := geometry.NewTriangleWithNormals(v0, v1, v2, n0, n1, n2)
	if err != nil {
		b.err = err
		return b
	}
	b.objects = append(b.objects, triangleObject(tri))
	return b
}

// AddInstance places mesh at transform and adds the resulting Instance to
// the scene.
func (b *SceneBuilder[T]) AddInstance(mesh *geometry.Mesh[T], transform core.Mat4[T]) *SceneBuilder[T] {
	if b.err != nil {
		return b
	}
	inst, err := NewInstance(mesh, transform)
	if err != nil {
		b.err = err
		return b
	}
	b.objects = append(b.objects, instanceObject(inst))
	return b
}

// Build constructs the Scene's top-level BVH over every object added so
// far, returning the first error encountered by an Add call or by the
// BVH config itself. An empty builder yields a Scene whose queries always
// report no intersection.
func (b *SceneBuilder[T]) Build(config bvh.Config[T]) (*Scene[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return build(config, b.objects)
}
