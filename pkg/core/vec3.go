package core

import "github.com/go-gl/mathgl/mgl32"

// Vec3 represents a 3D vector in single precision
type Vec3 = mgl32.Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}
