package geometry

import (
	"math"
	"testing"

	"github.com/FreddyWordingham/geodesic/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere, err := NewSphere(core.NewVec3(0.0, 0, 0), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ray := core.NewRay(core.NewVec3(2.0, 0, 0), core.NewVec3(0.0, 1, 0))

	if hit, ok := sphere.Intersect(ray, math.Inf(1)); ok {
		t.Errorf("expected miss, got hit at t=%f", hit.Distance)
	}
}

func TestSphere_Intersect_FrontAndBack(t *testing.T) {
	sphere, _ := NewSphere(core.NewVec3(0.0, 0, 0), 1.0)

	tests := []struct {
		name       string
		origin     core.Vec3[float64]
		direction  core.Vec3[float64]
		wantT      float64
		wantNormal core.Vec3[float64]
	}{
		{
			name:       "from outside",
			origin:     core.NewVec3(0.0, 0, 2),
			direction:  core.NewVec3(0.0, 0, -1),
			wantT:      1.0,
			wantNormal: core.NewVec3(0.0, 0, 1),
		},
		{
			name:       "from inside, exits through +z",
			origin:     core.NewVec3(0.0, 0, 0),
			direction:  core.NewVec3(0.0, 0, 1),
			wantT:      1.0,
			wantNormal: core.NewVec3(0.0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, ok := sphere.Intersect(ray, math.Inf(1))
			if !ok {
				t.Fatal("expected hit, got miss")
			}
			if math.Abs(hit.Distance-tt.wantT) > 1e-9 {
				t.Errorf("expected t=%f, got t=%f", tt.wantT, hit.Distance)
			}
			if vecDist(hit.GeometricNormal, tt.wantNormal) > 1e-9 {
				t.Errorf("expected normal %v, got %v", tt.wantNormal, hit.GeometricNormal)
			}
		})
	}
}

func TestSphere_Intersect_RespectsTMax(t *testing.T) {
	sphere, _ := NewSphere(core.NewVec3(0.0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0.0, 0, 2), core.NewVec3(0.0, 0, -1))

	if hit, ok := sphere.Intersect(ray, 0.5); ok {
		t.Errorf("expected miss beyond tMax, got hit at t=%f", hit.Distance)
	}
}

func TestSphere_Intersect_Glancing(t *testing.T) {
	sphere, _ := NewSphere(core.NewVec3(0.0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1.0, 0, 2), core.NewVec3(0.0, 0, -1))

	hit, ok := sphere.Intersect(ray, math.Inf(1))
	if !ok {
		t.Fatal("expected glancing hit, got miss")
	}
	want := core.NewVec3(1.0, 0, 0)
	if vecDist(ray.At(hit.Distance), want) > 1e-9 {
		t.Errorf("expected hit point %v, got %v", want, ray.At(hit.Distance))
	}
}

func TestSphere_New_RejectsNonPositiveRadius(t *testing.T) {
	if _, err := NewSphere(core.NewVec3(0.0, 0, 0), 0); err == nil {
		t.Error("expected error for zero radius")
	}
	if _, err := NewSphere(core.NewVec3(0.0, 0, 0), -1); err == nil {
		t.Error("expected error for negative radius")
	}
}

func vecDist(a, b core.Vec3[float64]) float64 {
	return a.Sub(b).Length()
}
