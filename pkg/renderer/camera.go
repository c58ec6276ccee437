package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// OrthographicCamera generates parallel rays, one per pixel, each starting on
// the z=0 plane at the pixel coordinates and pointing along +Z
type OrthographicCamera struct {
	direction core.Vec3
}

// NewOrthographicCamera creates a camera looking down the +Z axis
func NewOrthographicCamera() OrthographicCamera {
	return OrthographicCamera{direction: core.NewVec3(0, 0, 1)}
}

// GetRay returns the ray for pixel (x, y)
func (c OrthographicCamera) GetRay(x, y int) core.Ray {
	return core.NewRay(core.NewVec3(float32(x), float32(y), 0), c.direction)
}
