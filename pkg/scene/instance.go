package scene

import (
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geoerr"
	"github.com/FreddyWordingham/geodesic/pkg/geometry"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// Instance places a Mesh in world space via a 4x4 transform. Its world
// AABB is the AABB of the transform applied to all 8 corners of the
// mesh's local AABB.
type Instance[T xmath.Real] struct {
	mesh         *geometry.Mesh[T]
	transform    core.Mat4[T]
	inverse      core.Mat4[T]
	normalMatrix core.Mat4[T]
	worldAABB    core.AABB[T]
}

// NewInstance places mesh at transform, rejecting a singular transform
// (one with no inverse).
func NewInstance[T xmath.Real](mesh *geometry.Mesh[T], transform core.Mat4[T]) (*Instance[T], error) {
	inverse, ok := transform.Inverse()
	if !ok {
		return nil, &geoerr.InvalidTransformError{Reason: "transform matrix is singular"}
	}

	worldAABB := core.EmptyAABB[T]()
	for _, corner := range mesh.AABB().Corners() {
		worldAABB = core.UnionPoint(worldAABB, transform.TransformPoint(corner))
	}

	return &Instance[T]{
		mesh:         mesh,
		transform:    transform,
		inverse:      inverse,
		normalMatrix: inverse.Transpose3x3(),
		worldAABB:    worldAABB,
	}, nil
}

// AABB returns the instance's world-space bounding box.
func (inst *Instance[T]) AABB() core.AABB[T] {
	return inst.worldAABB
}

// toLocalRay transforms a world ray into the mesh's local space. NewRay
// normalizes the transformed direction; its pre-normalization length is
// returned as the scale factor relating local and world ray parameters,
// needed to convert distances back to world units when the transform is
// not rigid.
func (inst *Instance[T]) toLocalRay(ray core.Ray[T]) (core.Ray[T], T, bool) {
	localOrigin := inst.inverse.TransformPoint(ray.Origin)
	localDirection := inst.inverse.TransformVector(ray.Direction)
	scale := localDirection.Length()
	if scale < xmath.Epsilon[T]() {
		return core.Ray[T]{}, 0, false
	}
	return core.NewRay(localOrigin, localDirection), scale, true
}

// Intersect transforms ray into the mesh's local space, queries the mesh,
// and transforms the result back to world space: the distance is rescaled
// by the direction's local-space scale factor (valid for non-rigid,
// scaling transforms; for a rigid transform scale is always 1), and both
// normals are transformed by the transpose of the inverse and renormalized.
func (inst *Instance[T]) Intersect(ray core.Ray[T], tMax T) (core.Hit[T], bool) {
	localRay, scale, ok := inst.toLocalRay(ray)
	if !ok {
		return core.Hit[T]{}, false
	}

	hit, ok := inst.mesh.Intersect(localRay, tMax*scale)
	if !ok {
		return core.Hit[T]{}, false
	}

	return core.Hit[T]{
		Distance:        hit.Distance / scale,
		GeometricNormal: inst.normalMatrix.TransformVector(hit.GeometricNormal).Normalize(),
		ShadingNormal:   inst.normalMatrix.TransformVector(hit.ShadingNormal).Normalize(),
	}, true
}

// IntersectAny is the any-hit counterpart of Intersect, used for shadow
// ray style queries bounded by tMax.
func (inst *Instance[T]) IntersectAny(ray core.Ray[T], tMax T) bool {
	localRay, scale, ok := inst.toLocalRay(ray)
	if !ok {
		return false
	}
	return inst.mesh.IntersectAny(localRay, tMax*scale)
}
