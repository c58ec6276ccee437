package core

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrCanvasSaved is returned when a canvas is used after it was saved
	ErrCanvasSaved = errors.New("canvas already saved")

	// ErrInvalidGeometry is returned for degenerate shapes
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// BoundsError reports a draw outside the canvas extent
type BoundsError struct {
	Area   image.Rectangle // Offending point (1x1) or block
	Width  int             // Canvas width
	Height int             // Canvas height
}

func (e *BoundsError) Error() string {
	if e.Area.Dx() == 1 && e.Area.Dy() == 1 {
		return fmt.Sprintf("drawing outside of canvas: point (%d, %d) outside dimensions (%d/%d)",
			e.Area.Min.X, e.Area.Min.Y, e.Width, e.Height)
	}
	return fmt.Sprintf("drawing outside of canvas: drawing area (%d-%d, %d-%d) outside dimensions (%d/%d)",
		e.Area.Min.X, e.Area.Max.X, e.Area.Min.Y, e.Area.Max.Y, e.Width, e.Height)
}

// EncodeError reports a failure to encode or write the canvas image
type EncodeError struct {
	Path   string
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("failed to save %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to save %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
