package core

// Renderable is anything that can be tested against a ray
type Renderable interface {
	// Intersect returns the distance along the ray at which the surface is
	// hit, and false when the ray misses.
	Intersect(ray Ray) (float32, bool)
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
