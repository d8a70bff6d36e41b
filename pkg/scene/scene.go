package scene

import (
	"github.com/FreddyWordingham/geodesic/pkg/bvh"
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// Scene holds every object a query can see and the top-level BVH built
// over them. The only construction failure is an invalid BvhConfig; an
// empty object list is accepted, producing a Scene whose every query
// reports no intersection. Queries only read a built Scene, so Intersect
// and IntersectAny may be called from any number of goroutines at once.
type Scene[T xmath.Real] struct {
	objects []SceneObject[T]
	tree    *bvh.BVH[T]
}

// build constructs a Scene from a finished object list. Called only by
// SceneBuilder.Build, which owns the objects slice by the time it gets here.
func build[T xmath.Real](config bvh.Config[T], objects []SceneObject[T]) (*Scene[T], error) {
	tree, err := bvh.Build(config, objects)
	if err != nil {
		return nil, err
	}
	return &Scene[T]{objects: objects, tree: tree}, nil
}

// ObjectCount returns the number of top-level objects the scene owns.
func (s *Scene[T]) ObjectCount() int {
	return len(s.objects)
}

// Intersect finds the closest intersection against every object in the
// scene, reporting the index of the hit object and the world-space Hit.
func (s *Scene[T]) Intersect(ray core.Ray[T]) (int, core.Hit[T], bool) {
	return bvh.Intersect[T, SceneObject[T]](s.tree, ray, xmath.Inf[T](1), s.objects)
}

// IntersectAny reports whether ray hits any object within tMax,
// short-circuiting on the first hit found. Useful for shadow-ray style
// visibility queries.
func (s *Scene[T]) IntersectAny(ray core.Ray[T], tMax T) bool {
	return bvh.IntersectAny[T, SceneObject[T]](s.tree, ray, tMax, s.objects)
}
