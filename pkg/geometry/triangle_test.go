package geometry

import (
	"math"
	"testing"

	"github.com/FreddyWordingham/geodesic/pkg/core"
)

func unitTriangle() Triangle[float64] {
	tri, err := NewTriangle(
		core.NewVec3(0.0, 0, 0),
		core.NewVec3(1.0, 0, 0),
		core.NewVec3(0.0, 1, 0),
	)
	if err != nil {
		panic(err)
	}
	return tri
}

func TestTriangle_Intersect_Center(t *testing.T) {
	tri := unitTriangle()
	ray := core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0.0, 0, -1))

	hit, ok := tri.Intersect(ray, math.Inf(1))
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if math.Abs(hit.Distance-1) > 1e-9 {
		t.Errorf("expected t=1, got t=%f", hit.Distance)
	}
	if vecDist(hit.GeometricNormal, core.NewVec3(0.0, 0, 1)) > 1e-9 {
		t.Errorf("expected geometric normal (0,0,1), got %v", hit.GeometricNormal)
	}
}

func TestTriangle_Intersect_OutsideEdges(t *testing.T) {
	tri := unitTriangle()
	ray := core.NewRay(core.NewVec3(1.0, 1, 1), core.NewVec3(0.0, 0, -1))

	if hit, ok := tri.Intersect(ray, math.Inf(1)); ok {
		t.Errorf("expected miss outside the hypotenuse, got hit at t=%f", hit.Distance)
	}
}

func TestTriangle_Intersect_ParallelRayMisses(t *testing.T) {
	tri := unitTriangle()
	ray := core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(1.0, 0, 0))

	if hit, ok := tri.Intersect(ray, math.Inf(1)); ok {
		t.Errorf("expected miss for a ray parallel to the triangle's plane, got hit at t=%f", hit.Distance)
	}
}

func TestTriangle_ShadingNormalInterpolation(t *testing.T) {
	n0 := core.NewVec3(0.0, 0, 1)
	n1 := core.NewVec3(1.0, 0, 0).Normalize()
	n2 := core.NewVec3(-1.0, 0, 0).Normalize()

	tri, err := NewTriangleWithNormals(
		core.NewVec3(0.0, 0, 0),
		core.NewVec3(1.0, 0, 0),
		core.NewVec3(0.0, 1, 0),
		n0, n1, n2,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Hit the centroid: barycentric weights are (1/3, 1/3, 1/3).
	ray := core.NewRay(core.NewVec3(1.0/3, 1.0/3, 1), core.NewVec3(0.0, 0, -1))
	hit, ok := tri.Intersect(ray, math.Inf(1))
	if !ok {
		t.Fatal("expected hit, got miss")
	}

	want := n0.Add(n1).Add(n2).Normalize()
	if vecDist(hit.ShadingNormal, want) > 1e-6 {
		t.Errorf("expected interpolated shading normal %v, got %v", want, hit.ShadingNormal)
	}
	// Geometric normal is always the flat face normal, independent of the
	// per-vertex shading normals supplied above.
	if vecDist(hit.GeometricNormal, core.NewVec3(0.0, 0, 1)) > 1e-9 {
		t.Errorf("expected geometric normal (0,0,1), got %v", hit.GeometricNormal)
	}
}

func TestNewTriangle_RejectsDegenerate(t *testing.T) {
	_, err := NewTriangle(
		core.NewVec3(0.0, 0, 0),
		core.NewVec3(1.0, 0, 0),
		core.NewVec3(2.0, 0, 0),
	)
	if err == nil {
		t.Error("expected error for collinear vertices")
	}
}
