// Package renderer holds geodesic's thin external collaborators: camera
// ray generation and a parallel CLI driver that shoots those rays through
// a Scene and writes each hit's geometric normal out as a PNG.
// Neither does any shading; per the core's scope, a hit is reported, not
// lit.
package renderer

import (
	"math"

	"github.com/FreddyWordingham/geodesic/pkg/core"
)

// Camera generates world-space rays for a rectangular image plane, given a
// position, a look-at target and an up hint. It holds no reference to any
// Scene: ray generation is a pure projection, independent of what the ray
// is later tested against. Two projections are supported, mirroring the
// source library's perspective/orthographic pair: a perspective Camera
// fans rays out from origin through a near plane sized by field of view;
// an orthographic Camera keeps every ray parallel to forward and instead
// varies the ray's origin across a fixed-width plane.
type Camera struct {
	origin          core.Vec3[float64]
	lowerLeftCorner core.Vec3[float64]
	horizontal      core.Vec3[float64]
	vertical        core.Vec3[float64]
	forward         core.Vec3[float64]
	orthographic    bool
}

// NewCamera builds a perspective Camera. vfovDegrees is the vertical field
// of view; aspect is width/height.
func NewCamera(position, lookAt, up core.Vec3[float64], vfovDegrees, aspect float64) *Camera {
	theta := vfovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight
	return newCamera(position, lookAt, up, halfWidth, halfHeight, false)
}

// NewOrthographicCamera builds an orthographic Camera: every ray shares
// the same direction (camera forward) and instead walks its origin across
// a plane width units wide, height = width/aspect tall.
func NewOrthographicCamera(position, lookAt, up core.Vec3[float64], width, aspect float64) *Camera {
	halfWidth := width / 2
	halfHeight := halfWidth / aspect
	return newCamera(position, lookAt, up, halfWidth, halfHeight, true)
}

func newCamera(position, lookAt, up core.Vec3[float64], halfWidth, halfHeight float64, orthographic bool) *Camera {
	forward := lookAt.Sub(position).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	horizontal := right.Scale(2 * halfWidth)
	vertical := trueUp.Scale(2 * halfHeight)
	lowerLeft := position.
		Sub(horizontal.Scale(0.5)).
		Sub(vertical.Scale(0.5)).
		Add(forward)

	return &Camera{
		origin:          position,
		lowerLeftCorner: lowerLeft,
		horizontal:      horizontal,
		vertical:        vertical,
		forward:         forward,
		orthographic:    orthographic,
	}
}

// Ray returns the world-space ray through normalized image coordinates
// (s, t), both in [0, 1], with (0, 0) at the lower-left corner.
func (c *Camera) Ray(s, t float64) core.Ray[float64] {
	point := c.lowerLeftCorner.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t))
	if c.orthographic {
		return core.NewRay(point.Sub(c.forward), c.forward)
	}
	return core.NewRay(c.origin, point.Sub(c.origin))
}

