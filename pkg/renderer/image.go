package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/FreddyWordingham/geodesic/pkg/gplog"
	"github.com/FreddyWordingham/geodesic/pkg/scene"
)

var logger = gplog.New("renderer")

// Image renders a Scene to a normal visualization: each pixel's
// color is the hit's geometric normal mapped from [-1, 1] to [0, 255] per
// channel, and a miss is black. This is a geometric-hit visualization, not
// shading: the core reports intersections only, never light.
type Image struct {
	Width, Height int
	Camera        *Camera
}

// NewImage creates an Image renderer of the given pixel dimensions.
func NewImage(camera *Camera, width, height int) *Image {
	return &Image{Width: width, Height: height, Camera: camera}
}

// Render shoots one ray per pixel through scene, in parallel across
// runtime.NumCPU() tiles of rows, and returns the resulting RGBA image.
// Scene queries are pure and read-only, so every worker shares the same
// *scene.Scene without synchronization, per the concurrency model the
// core guarantees.
func (r *Image) Render(sc *scene.Scene[float64]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))

	numWorkers := runtime.NumCPU()
	if numWorkers > r.Height {
		numWorkers = r.Height
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	rowsPerWorker := (r.Height + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		rowStart := w * rowsPerWorker
		rowEnd := rowStart + rowsPerWorker
		if rowEnd > r.Height {
			rowEnd = r.Height
		}
		if rowStart >= rowEnd {
			continue
		}

		wg.Add(1)
		go func(rowStart, rowEnd int) {
			defer wg.Done()
			r.renderRows(sc, img, rowStart, rowEnd)
		}(rowStart, rowEnd)
	}
	wg.Wait()

	logger.Noticef("rendered %dx%d image with %d workers", r.Width, r.Height, numWorkers)
	return img
}

func (r *Image) renderRows(sc *scene.Scene[float64], img *image.RGBA, rowStart, rowEnd int) {
	for y := rowStart; y < rowEnd; y++ {
		t := float64(y) / float64(r.Height-1)
		for x := 0; x < r.Width; x++ {
			s := float64(x) / float64(r.Width-1)
			ray := r.Camera.Ray(s, t)

			_, hit, ok := sc.Intersect(ray)
			if !ok {
				img.Set(x, r.Height-1-y, color.RGBA{A: 255})
				continue
			}

			n := hit.GeometricNormal
			px := color.RGBA{
				R: uint8((n.X*0.5 + 0.5) * 255),
				G: uint8((n.Y*0.5 + 0.5) * 255),
				B: uint8((n.Z*0.5 + 0.5) * 255),
				A: 255,
			}
			img.Set(x, r.Height-1-y, px)
		}
	}
}
