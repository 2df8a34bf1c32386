package renderer

import "github.com/hamedsabri/RayTracingInOneWeekend/pkg/core"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
}

// PixelStats accumulates raw (pre-tone-map) color samples for one pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // Running sum of sample colors
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Color returns the tone-mapped average for this pixel: samples are
// averaged, gamma-2 corrected, and clamped to [0,1].
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	average := ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
	return average.GammaCorrect(2.0).Clamp(0.0, 1.0)
}
