package geometry

import (
	"math"
	"testing"

	"github.com/FreddyWordingham/geodesic/pkg/bvh"
	"github.com/FreddyWordingham/geodesic/pkg/core"
)

func quadMesh(t *testing.T) *Mesh[float64] {
	t.Helper()
	tri1, err := NewTriangle(core.NewVec3(0.0, 0, 0), core.NewVec3(1.0, 0, 0), core.NewVec3(1.0, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tri2, err := NewTriangle(core.NewVec3(0.0, 0, 0), core.NewVec3(1.0, 1, 0), core.NewVec3(0.0, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mesh, err := NewMesh(bvh.DefaultConfig[float64](), []Triangle[float64]{tri1, tri2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return mesh
}

func TestMesh_Intersect_HitsEitherTriangle(t *testing.T) {
	mesh := quadMesh(t)

	tests := []struct {
		name   string
		origin core.Vec3[float64]
	}{
		{"lower triangle", core.NewVec3(0.25, 0.1, 1)},
		{"upper triangle", core.NewVec3(0.25, 0.9, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0.0, 0, -1))
			hit, ok := mesh.Intersect(ray, math.Inf(1))
			if !ok {
				t.Fatal("expected hit, got miss")
			}
			if math.Abs(hit.Distance-1) > 1e-9 {
				t.Errorf("expected t=1, got t=%f", hit.Distance)
			}
		})
	}
}

func TestMesh_Intersect_Miss(t *testing.T) {
	mesh := quadMesh(t)
	ray := core.NewRay(core.NewVec3(5.0, 5, 1), core.NewVec3(0.0, 0, -1))

	if hit, ok := mesh.Intersect(ray, math.Inf(1)); ok {
		t.Errorf("expected miss outside the quad, got hit at t=%f", hit.Distance)
	}
}

func TestMesh_AABB_CoversBothTriangles(t *testing.T) {
	mesh := quadMesh(t)
	box := mesh.AABB()

	if box.Min.X > 0 || box.Min.Y > 0 || box.Max.X < 1 || box.Max.Y < 1 {
		t.Errorf("expected AABB to cover [0,1]x[0,1], got min=%v max=%v", box.Min, box.Max)
	}
}

func TestNewMesh_RejectsEmpty(t *testing.T) {
	if _, err := NewMesh(bvh.DefaultConfig[float64](), []Triangle[float64]{}); err == nil {
		t.Error("expected error for an empty triangle slice")
	}
}
