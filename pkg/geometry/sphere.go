package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float32
}

// NewSphere creates a new sphere. The radius must be positive and finite.
func NewSphere(center core.Vec3, radius float32) (*Sphere, error) {
	r := float64(radius)
	if !(r > 0) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("sphere radius %v: %w", radius, core.ErrInvalidGeometry)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// Intersect returns the distance along the ray to the nearest point where the
// ray touches or enters the sphere. The ray direction must be unit length.
func (s *Sphere) Intersect(ray core.Ray) (float32, bool) {
	// Vector from ray origin to sphere center
	centerDir := s.Center.Sub(ray.Origin)

	// Projection of the center onto the ray
	proj := centerDir.Dot(ray.Direction)
	if proj < 0 {
		return 0, false
	}

	// Squared distance between the center and the ray's line
	perpDistSq := centerDir.Dot(centerDir) - proj*proj
	radiusSq := s.Radius * s.Radius

	// Inclusive boundary: a tangent ray is a hit
	if perpDistSq > radiusSq {
		return 0, false
	}

	halfChord := float32(math.Sqrt(float64(radiusSq - perpDistSq)))
	tNear := proj - halfChord
	tFar := proj + halfChord

	if tNear < 0 && tFar < 0 {
		return 0, false
	}

	if tNear < tFar {
		return tNear, true
	}
	return tFar, true
}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere{center: (%g, %g, %g), radius: %g}",
		s.Center.X(), s.Center.Y(), s.Center.Z(), s.Radius)
}
