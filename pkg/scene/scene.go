package scene

import "github.com/df07/go-raycaster/pkg/core"

// Scene is an ordered collection of renderable objects. Insertion order is
// the order objects are tested during rendering.
type Scene struct {
	renderables []core.Renderable
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// Add appends a renderable to the end of the scene
func (s *Scene) Add(r core.Renderable) {
	s.renderables = append(s.renderables, r)
}

// Renderables returns the objects in insertion order
func (s *Scene) Renderables() []core.Renderable {
	return s.renderables
}

// Len returns the number of objects in the scene
func (s *Scene) Len() int {
	return len(s.renderables)
}

// Config contains the output settings a scene recommends
type Config struct {
	Width          int        // Image width
	Height         int        // Image height
	HitColor       core.Color // Color drawn wherever any object is hit
	BackdropTop    core.Color // Backdrop color at row 0
	BackdropBottom core.Color // Backdrop color approached at the last row
}

// DefaultConfig returns the standard 800x600 setup with a green hit color
// over a blue-to-grey backdrop
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		HitColor:       core.NewColor(0, 255, 0),
		BackdropTop:    core.NewColor(122, 170, 255),
		BackdropBottom: core.NewColor(220, 220, 230),
	}
}
