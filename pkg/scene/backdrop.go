package scene

import "github.com/df07/go-raycaster/pkg/core"

// Backdrop returns a width*height row-major vertical gradient. Row y uses
// t = y/height, so the last row stays just short of bottom. Channels are
// truncated, not rounded.
func Backdrop(width, height int, top, bottom core.Color) []core.Color {
	if width <= 0 || height <= 0 {
		return nil
	}

	colors := make([]core.Color, width*height)
	for y := 0; y < height; y++ {
		t := float32(y) / float32(height)
		row := core.NewColor(
			lerpChannel(top.Red, bottom.Red, t),
			lerpChannel(top.Green, bottom.Green, t),
			lerpChannel(top.Blue, bottom.Blue, t),
		)
		for x := 0; x < width; x++ {
			colors[y*width+x] = row
		}
	}
	return colors
}

func lerpChannel(from, to uint8, t float32) uint8 {
	return uint8(float32(from)*(1-t) + float32(to)*t)
}
