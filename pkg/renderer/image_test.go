package renderer

import (
	"image/color"
	"testing"

	"github.com/FreddyWordingham/geodesic/pkg/bvh"
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/scene"
)

func buildSingleSphereScene(t *testing.T) *scene.Scene[float64] {
	t.Helper()
	sc, err := scene.NewSceneBuilder[float64]().
		AddSphere(core.NewVec3(0.0, 0.0, 0.0), 1.0).
		Build(bvh.DefaultConfig[float64]())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return sc
}

func TestImageRenderHitsAndMisses(t *testing.T) {
	sc := buildSingleSphereScene(t)
	cam := NewCamera(core.NewVec3(0.0, 0.0, 5.0), core.NewVec3(0.0, 0.0, 0.0), core.NewVec3(0.0, 1.0, 0.0), 20, 1.0)

	img := NewImage(cam, 32, 32).Render(sc)

	center := img.RGBAAt(16, 16)
	if center == (color.RGBA{A: 255}) {
		t.Fatalf("expected center pixel to hit the sphere, got background color %+v", center)
	}

	corner := img.RGBAAt(0, 0)
	if corner != (color.RGBA{A: 255}) {
		t.Fatalf("expected corner pixel to miss the sphere, got %+v", corner)
	}
}
