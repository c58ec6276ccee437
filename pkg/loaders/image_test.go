package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/df07/go-raycaster/pkg/core"
)

func writeTestImage(t *testing.T, path string, encode func(*os.File, image.Image) error) {
	t.Helper()

	// 2x2: white, red / green, blue
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

// TestLoadImage creates test images and verifies loading
func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name   string
		file   string
		format string
		encode func(*os.File, image.Image) error
	}{
		{"png", "test.png", "png", func(f *os.File, img image.Image) error { return png.Encode(f, img) }},
		{"bmp", "test.bmp", "bmp", func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }},
	}

	expected := []core.Color{
		core.NewColor(255, 255, 255),
		core.NewColor(255, 0, 0),
		core.NewColor(0, 255, 0),
		core.NewColor(0, 0, 255),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			writeTestImage(t, path, tt.encode)

			imageData, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}

			if imageData.Width != 2 || imageData.Height != 2 {
				t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
			}
			if imageData.Format != tt.format {
				t.Errorf("Expected format %q, got %q", tt.format, imageData.Format)
			}
			if len(imageData.Pixels) != 4 {
				t.Fatalf("Expected 4 pixels, got %d", len(imageData.Pixels))
			}
			for i, want := range expected {
				if got := imageData.Pixels[i]; got != want {
					t.Errorf("Pixel %d: expected %v, got %v", i, want, got)
				}
			}
		})
	}
}

func TestLoadImage_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	garbage := filepath.Join(tmpDir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, path := range []string{filepath.Join(tmpDir, "missing.png"), garbage} {
		if _, err := LoadImage(path); err == nil {
			t.Errorf("Expected error loading %s", path)
		}
	}
}
