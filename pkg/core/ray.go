package core

// Ray represents a ray with an origin and direction.
// Direction is expected to be unit length and is never renormalized.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}
