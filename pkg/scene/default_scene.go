package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

type sphereSpec struct {
	center core.Vec3
	radius float32
}

var defaultSpheres = []sphereSpec{
	{core.NewVec3(150, 150, 0), 100},
	{core.NewVec3(300, 300, 0), 32},
	{core.NewVec3(550, 450, 0), 50},
	{core.NewVec3(600, -20, 0), 300},
}

// NewDefaultScene creates the four-sphere scene
func NewDefaultScene() (*Scene, Config, error) {
	s, err := fromSpecs(defaultSpheres)
	if err != nil {
		return nil, Config{}, err
	}
	return s, DefaultConfig(), nil
}

// NewSingleSphereScene creates a scene with one sphere at (150, 150, 0)
// of radius 100
func NewSingleSphereScene() (*Scene, Config, error) {
	s, err := fromSpecs(defaultSpheres[:1])
	if err != nil {
		return nil, Config{}, err
	}
	return s, DefaultConfig(), nil
}

// NewEmptyScene creates a scene with no objects; only the backdrop renders
func NewEmptyScene() (*Scene, Config, error) {
	return New(), DefaultConfig(), nil
}

func fromSpecs(specs []sphereSpec) (*Scene, error) {
	s := New()
	for _, spec := range specs {
		sphere, err := geometry.NewSphere(spec.center, spec.radius)
		if err != nil {
			return nil, err
		}
		s.Add(sphere)
	}
	return s, nil
}
