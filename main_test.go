package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestRenderCommandProducesPNG(t *testing.T) {
	dir := t.TempDir()

	assetsPath := writeFile(t, dir, "assets.json", `{
		"bvh_config": {
			"traverse_cost": 1.0,
			"intersect_cost": 1.25,
			"sah_buckets": 12,
			"max_shapes_per_node": 4,
			"max_depth": 32
		},
		"meshes": []
	}`)

	scenePath := writeFile(t, dir, "scene.json", `{
		"objects": [
			{"Sphere": [[0, 0, 0], 1.0]},
			{"Plane": [[0, -5, 0], [0, 1, 0]]}
		]
	}`)

	cameraPath := writeFile(t, dir, "camera.json", `{
		"projection": {"Perspective": 40},
		"position": [0, 0, 5],
		"look_at": [0, 0, 0],
		"resolution": [32, 32]
	}`)

	outPath := filepath.Join(dir, "out.png")

	app := newApp()
	args := []string{
		"geodesic", "render",
		"--assets", assetsPath,
		"--scene", scenePath,
		"--camera", cameraPath,
		"--out", outPath,
	}
	if err := app.Run(args); err != nil {
		t.Fatalf("app.Run: %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("stat output PNG: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output PNG is empty")
	}
}

func TestRenderCommandFailsOnMissingScene(t *testing.T) {
	dir := t.TempDir()

	assetsPath := writeFile(t, dir, "assets.json", `{
		"bvh_config": {
			"traverse_cost": 1.0,
			"intersect_cost": 1.25,
			"sah_buckets": 12,
			"max_shapes_per_node": 4,
			"max_depth": 32
		},
		"meshes": []
	}`)

	app := newApp()
	args := []string{
		"geodesic", "render",
		"--assets", assetsPath,
		"--scene", filepath.Join(dir, "missing.json"),
		"--camera", filepath.Join(dir, "missing-camera.json"),
	}
	if err := app.Run(args); err == nil {
		t.Fatal("expected an error for a missing scene file, got nil")
	}
}
