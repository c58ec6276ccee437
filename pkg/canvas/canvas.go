package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
)

// ErrInvalidDimensions is returned when a canvas is created with a
// non-positive width or height
var ErrInvalidDimensions = errors.New("canvas dimensions must be positive")

// Canvas is a fixed-size pixel buffer with bounds-checked drawing
type Canvas struct {
	width  int
	height int
	image  *image.NRGBA
	saved  bool
}

// New creates a canvas of the given size. Every pixel starts as black with
// zero alpha.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		image:  image.NewNRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Dimensions returns the canvas width and height
func (c *Canvas) Dimensions() (int, int) {
	return c.width, c.height
}

// Draw writes a single pixel
func (c *Canvas) Draw(x, y int, col core.Color) error {
	if c.saved {
		return core.ErrCanvasSaved
	}
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return &core.BoundsError{Area: image.Rect(x, y, x+1, y+1), Width: c.width, Height: c.height}
	}
	c.set(x, y, col.ToPixel())
	return nil
}

// DrawArea writes colors into a block blockWidth columns wide starting at
// (x, y). Element i lands on (x + i%blockWidth, y + i/blockWidth). The whole
// block is validated before anything is written.
func (c *Canvas) DrawArea(x, y, blockWidth int, colors []core.Color) error {
	if c.saved {
		return core.ErrCanvasSaved
	}
	if blockWidth <= 0 {
		return fmt.Errorf("draw area: block width must be positive, got %d", blockWidth)
	}
	if len(colors) == 0 {
		return nil
	}

	rows := (len(colors) + blockWidth - 1) / blockWidth
	cols := min(blockWidth, len(colors))
	area := image.Rect(x, y, x+cols, y+rows)
	if x < 0 || y < 0 || area.Max.X > c.width || area.Max.Y > c.height {
		return &core.BoundsError{Area: area, Width: c.width, Height: c.height}
	}

	for i, col := range colors {
		c.set(x+i%blockWidth, y+i/blockWidth, col.ToPixel())
	}
	return nil
}

// Fill paints every pixel with the same color
func (c *Canvas) Fill(col core.Color) error {
	if c.saved {
		return core.ErrCanvasSaved
	}
	p := col.ToPixel()
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.set(x, y, p)
		}
	}
	return nil
}

// At returns the color stored at (x, y). Out of range reads return black.
func (c *Canvas) At(x, y int) core.Color {
	return core.ColorFromPixel(c.image.NRGBAAt(x, y))
}

// Image returns the backing buffer
func (c *Canvas) Image() *image.NRGBA {
	return c.image
}

func (c *Canvas) set(x, y int, p color.NRGBA) {
	c.image.SetNRGBA(x, y, p)
}
