package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels rendered
	HitPixels         int           // Pixels where at least one object was hit
	IntersectionTests int           // Object tests performed; a pixel stops testing at its first hit
	Duration          time.Duration // Wall time for the whole render
}

// merge adds the counters of other into s. Duration is left alone.
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.IntersectionTests += other.IntersectionTests
}

// HitRatio returns the fraction of pixels that hit an object
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
