package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// NewSphereGridScene creates a gridSize x gridSize grid of spheres spread
// evenly over the default canvas
func NewSphereGridScene(gridSize int) (*Scene, Config, error) {
	config := DefaultConfig()
	if gridSize <= 0 {
		return New(), config, nil
	}

	// Cell size so the grid fills the canvas with a half-cell margin
	cellX := float32(config.Width) / float32(gridSize)
	cellY := float32(config.Height) / float32(gridSize)

	// 35% of the smaller cell side keeps neighbours apart
	radius := float32(math.Max(1, float64(min(cellX, cellY))*0.35))

	specs := make([]sphereSpec, 0, gridSize*gridSize)
	for j := 0; j < gridSize; j++ {
		for i := 0; i < gridSize; i++ {
			x := (float32(i) + 0.5) * cellX
			y := (float32(j) + 0.5) * cellY
			specs = append(specs, sphereSpec{core.NewVec3(x, y, 0), radius})
		}
	}

	s, err := fromSpecs(specs)
	if err != nil {
		return nil, Config{}, err
	}
	return s, config, nil
}
