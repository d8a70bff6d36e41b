package geometry

import (
	"math"
	"testing"

	"github.com/FreddyWordingham/geodesic/pkg/core"
)

func TestPlane_Intersect_Basic(t *testing.T) {
	plane, err := NewPlane(core.NewVec3(0.0, 0, 0), core.NewVec3(0.0, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ray := core.NewRay(core.NewVec3(0.0, 5, 0), core.NewVec3(0.0, -1, 0))

	hit, ok := plane.Intersect(ray, math.Inf(1))
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if math.Abs(hit.Distance-5) > 1e-9 {
		t.Errorf("expected t=5, got t=%f", hit.Distance)
	}
}

func TestPlane_Intersect_NormalNeverFlips(t *testing.T) {
	plane, _ := NewPlane(core.NewVec3(0.0, 0, 0), core.NewVec3(0.0, 1, 0))

	// Ray approaches from below the plane; the normal reported must stay
	// the plane's own normal regardless of approach side.
	ray := core.NewRay(core.NewVec3(0.0, -5, 0), core.NewVec3(0.0, 1, 0))
	hit, ok := plane.Intersect(ray, math.Inf(1))
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if vecDist(hit.GeometricNormal, core.NewVec3(0.0, 1, 0)) > 1e-9 {
		t.Errorf("expected unflipped normal (0,1,0), got %v", hit.GeometricNormal)
	}
}

func TestPlane_Intersect_ParallelRayMisses(t *testing.T) {
	plane, _ := NewPlane(core.NewVec3(0.0, 0, 0), core.NewVec3(0.0, 1, 0))
	ray := core.NewRay(core.NewVec3(0.0, 1, 0), core.NewVec3(1.0, 0, 0))

	if hit, ok := plane.Intersect(ray, math.Inf(1)); ok {
		t.Errorf("expected miss for a parallel ray, got hit at t=%f", hit.Distance)
	}
}

func TestPlane_New_RejectsZeroNormal(t *testing.T) {
	if _, err := NewPlane(core.NewVec3(0.0, 0, 0), core.NewVec3(0.0, 0, 0)); err == nil {
		t.Error("expected error for zero-length normal")
	}
}
