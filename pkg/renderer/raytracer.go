package renderer

import (
	"image"
	"time"

	"github.com/df07/go-raycaster/pkg/canvas"
	"github.com/df07/go-raycaster/pkg/core"
)

// Scene is the read-only view of a scene the raytracer needs
type Scene interface {
	Renderables() []core.Renderable
}

// Raytracer casts one ray per pixel through a scene and paints every pixel
// whose ray hits any object with a single flat color
type Raytracer struct {
	scene    Scene
	camera   OrthographicCamera
	hitColor core.Color
	logger   core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, hitColor core.Color, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		scene:    scene,
		camera:   NewOrthographicCamera(),
		hitColor: hitColor,
		logger:   logger,
	}
}

// Render traces every pixel of c in row-major order on the calling goroutine
func (rt *Raytracer) Render(c *canvas.Canvas) (RenderStats, error) {
	startTime := time.Now()
	width, height := c.Dimensions()

	stats, err := rt.renderBounds(c, image.Rect(0, 0, width, height))
	stats.Duration = time.Since(startTime)
	if err != nil {
		return stats, err
	}

	rt.logRender(width, height, stats)
	return stats, nil
}

// hitAny tests the ray against objects in insertion order and stops at the
// first hit. Distances are not compared across objects.
func (rt *Raytracer) hitAny(ray core.Ray) (tests int, hit bool) {
	for _, object := range rt.scene.Renderables() {
		tests++
		if _, isHit := object.Intersect(ray); isHit {
			return tests, true
		}
	}
	return tests, false
}

// renderBounds traces the pixels inside bounds. Distinct bounds never share a
// pixel, so callers may run several at once on the same canvas.
func (rt *Raytracer) renderBounds(c *canvas.Canvas, bounds image.Rectangle) (RenderStats, error) {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tests, hit := rt.hitAny(rt.camera.GetRay(x, y))
			stats.IntersectionTests += tests
			if !hit {
				continue
			}
			if err := c.Draw(x, y, rt.hitColor); err != nil {
				return stats, err
			}
			stats.HitPixels++
		}
	}

	return stats, nil
}

func (rt *Raytracer) logRender(width, height int, stats RenderStats) {
	rt.logger.Printf("Rendered %dx%d with %d objects in %v: %d pixels hit (%.1f%%), %d intersection tests\n",
		width, height, len(rt.scene.Renderables()), stats.Duration,
		stats.HitPixels, stats.HitRatio()*100, stats.IntersectionTests)
}
