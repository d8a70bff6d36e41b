package loaders

import "testing"

func TestLoadCamera(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "camera.json", `{
		"projection": {"Perspective": 40},
		"position": [0, 0, 5],
		"look_at": [0, 0, 0],
		"resolution": [64, 48]
	}`)

	cam, width, height, err := LoadCamera(path)
	if err != nil {
		t.Fatalf("LoadCamera: %v", err)
	}
	if width != 64 || height != 48 {
		t.Fatalf("resolution = (%d, %d), want (64, 48)", width, height)
	}

	ray := cam.Ray(0.5, 0.5)
	if ray.Direction.Z >= 0 {
		t.Fatalf("expected center ray to point toward -Z, got direction %+v", ray.Direction)
	}
}

func TestLoadCameraOrthographic(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "camera.json", `{
		"projection": {"Orthographic": 4},
		"position": [0, 0, 5],
		"look_at": [0, 0, 0],
		"resolution": [10, 10]
	}`)

	cam, _, _, err := LoadCamera(path)
	if err != nil {
		t.Fatalf("LoadCamera: %v", err)
	}

	// Every ray an orthographic camera casts shares the same direction.
	a := cam.Ray(0, 0)
	b := cam.Ray(1, 1)
	if a.Direction != b.Direction {
		t.Fatalf("orthographic rays should share direction: %+v vs %+v", a.Direction, b.Direction)
	}
	if a.Origin == b.Origin {
		t.Fatal("orthographic rays should originate from distinct points on the image plane")
	}
}

func TestLoadCameraRejectsMissingProjection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "camera.json", `{
		"projection": {},
		"position": [0, 0, 5],
		"look_at": [0, 0, 0],
		"resolution": [10, 10]
	}`)

	if _, _, _, err := LoadCamera(path); err == nil {
		t.Fatal("expected an error for a missing projection variant, got nil")
	}
}
