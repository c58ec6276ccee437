package core

import (
	"errors"
	"image"
	"io/fs"
	"strings"
	"testing"
)

func TestBoundsError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *BoundsError
		contains string
	}{
		{
			name:     "point",
			err:      &BoundsError{Area: image.Rect(800, 10, 801, 11), Width: 800, Height: 600},
			contains: "point (800, 10) outside dimensions (800/600)",
		},
		{
			name:     "area",
			err:      &BoundsError{Area: image.Rect(10, 20, 30, 40), Width: 25, Height: 600},
			contains: "drawing area (10-30, 20-40) outside dimensions (25/600)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := tt.err.Error(); !strings.Contains(msg, tt.contains) {
				t.Errorf("Expected message to contain %q, got %q", tt.contains, msg)
			}
		})
	}
}

func TestEncodeError_Unwrap(t *testing.T) {
	err := error(&EncodeError{Path: "out.png", Format: "png", Err: fs.ErrPermission})

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("Expected EncodeError to unwrap to its cause")
	}

	var encErr *EncodeError
	if !errors.As(err, &encErr) || encErr.Path != "out.png" {
		t.Errorf("Expected errors.As to recover the EncodeError, got %v", encErr)
	}
}
