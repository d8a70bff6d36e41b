package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/renderer"
)

// projectionJSON is the tagged union the camera document's "projection"
// field carries: either {"Perspective": fov_degrees} or {"Orthographic":
// plane_width}, mirroring the two variants the scene format distinguishes.
type projectionJSON struct {
	Perspective  *float64 `json:"Perspective"`
	Orthographic *float64 `json:"Orthographic"`
}

// cameraDocument is the root of the camera JSON file: a tagged projection,
// a placement, and an output resolution. Resolution is [width, height]:
// the pixel dimensions the camera's aspect ratio is derived from and the
// image buffer is allocated at.
type cameraDocument struct {
	Projection projectionJSON `json:"projection"`
	Position   vec3JSON       `json:"position"`
	LookAt     vec3JSON       `json:"look_at"`
	Up         *vec3JSON      `json:"up"`
	Resolution [2]int         `json:"resolution"`
}

// LoadCamera reads a camera JSON document and returns a ready-to-use
// Camera plus the image dimensions it was specified for.
func LoadCamera(path string) (*renderer.Camera, int, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("loaders: reading camera %q: %w", path, err)
	}

	var doc cameraDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, 0, 0, fmt.Errorf("loaders: parsing camera %q: %w", path, err)
	}

	up := core.NewVec3(0.0, 1.0, 0.0)
	if doc.Up != nil {
		up = doc.Up.toVec3()
	}

	width, height := doc.Resolution[0], doc.Resolution[1]
	if width <= 0 || height <= 0 {
		return nil, 0, 0, fmt.Errorf("loaders: camera %q: resolution must be positive", path)
	}
	aspect := float64(width) / float64(height)
	position, lookAt := doc.Position.toVec3(), doc.LookAt.toVec3()

	switch {
	case doc.Projection.Orthographic != nil:
		cam := renderer.NewOrthographicCamera(position, lookAt, up, *doc.Projection.Orthographic, aspect)
		return cam, width, height, nil

	case doc.Projection.Perspective != nil:
		cam := renderer.NewCamera(position, lookAt, up, *doc.Projection.Perspective, aspect)
		return cam, width, height, nil

	default:
		return nil, 0, 0, fmt.Errorf("loaders: camera %q: projection must be Perspective or Orthographic", path)
	}
}
