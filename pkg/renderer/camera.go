package renderer

import (
	"math"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/scene"
)

// Camera maps pixel coordinates to primary rays through a pinhole model
type Camera struct {
	origin     core.Vec3
	forward    core.Vec3
	right      core.Vec3
	up         core.Vec3
	tanHalfFOV float64
	aspect     float64
	width      int
	height     int
}

// NewCamera builds an orthonormal camera basis from the scene's view
func NewCamera(view scene.View, width, height int) *Camera {
	forward := view.LookAt.Subtract(view.Position).Normalize()
	right := forward.Cross(view.Up).Normalize()
	up := right.Cross(forward).Normalize()

	return &Camera{
		origin:     view.Position,
		forward:    forward,
		right:      right,
		up:         up,
		tanHalfFOV: math.Tan(view.FOV / 2),
		aspect:     float64(width) / float64(height),
		width:      width,
		height:     height,
	}
}

// GetRay generates the primary ray for pixel (x, y). Row 0 maps to the top
// of the image: the view-plane v offset flips the Y axis.
func (c *Camera) GetRay(x, y int) core.Ray {
	u := (2*float64(x)/float64(c.width) - 1) * c.tanHalfFOV * c.aspect
	v := (1 - 2*float64(y)/float64(c.height)) * c.tanHalfFOV

	direction := c.forward.Add(c.right.Multiply(u)).Add(c.up.Multiply(v))
	return core.NewRay(c.origin, direction)
}

// Forward returns the camera's view direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}
