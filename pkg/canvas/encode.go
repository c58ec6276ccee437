package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-raycaster/pkg/core"
)

// Format identifies an output image encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks an encoding from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
}

// Encode writes the canvas to w in the given format
func (c *Canvas) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, c.image)
	case FormatJPEG:
		// JPEG has no alpha channel; encode the stored RGB values as-is
		return jpeg.Encode(w, opaque{c.image}, &jpeg.Options{Quality: 95})
	case FormatBMP:
		return bmp.Encode(w, c.image)
	case FormatTIFF:
		return tiff.Encode(w, c.image, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Save encodes the canvas to path, choosing the format from the extension.
// Once the file is opened the canvas is consumed: further drawing or saving
// returns core.ErrCanvasSaved, even if encoding failed.
func (c *Canvas) Save(path string) error {
	if c.saved {
		return core.ErrCanvasSaved
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return &core.EncodeError{Path: path, Err: err}
	}

	c.saved = true

	file, err := os.Create(path)
	if err != nil {
		return &core.EncodeError{Path: path, Format: string(format), Err: fmt.Errorf("failed to create file: %w", err)}
	}

	if err := c.Encode(file, format); err != nil {
		file.Close()
		return &core.EncodeError{Path: path, Format: string(format), Err: fmt.Errorf("failed to encode image: %w", err)}
	}

	if err := file.Close(); err != nil {
		return &core.EncodeError{Path: path, Format: string(format), Err: fmt.Errorf("failed to close file: %w", err)}
	}
	return nil
}

// opaque presents an NRGBA buffer with full alpha for encoders that would
// otherwise premultiply the zero alpha away
type opaque struct {
	*image.NRGBA
}

func (o opaque) At(x, y int) color.Color {
	p := o.NRGBAAt(x, y)
	p.A = 0xff
	return p
}

func (o opaque) Opaque() bool {
	return true
}
