package renderer

import (
	"math/rand"

	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for the per-worker generators
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene is what the raytracer needs from a scene: a camera plus the
// integrator's view of the world.
type Scene interface {
	GetCamera() *Camera
	integrator.Scene
}

// Raytracer drives the per-pixel sampling loop over a scene.
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     Config
	integrator *integrator.PathIntegrator
	random     *rand.Rand
}

// NewRaytracer creates a new raytracer with default configuration
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	rt := &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		integrator: integrator.NewPathIntegrator(),
	}
	rt.SetConfig(DefaultConfig())
	return rt
}

// SetConfig updates the configuration and reseeds the generator, so a
// render after SetConfig is reproducible.
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
	rt.random = rand.New(rand.NewSource(config.Seed))
}

// Config returns the current configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// samplePixel takes n jittered samples through pixel (x, y) into ps.
func (rt *Raytracer) samplePixel(x, y int, ps *PixelStats, random *rand.Rand, n int) {
	camera := rt.scene.GetCamera()

	for sample := 0; sample < n; sample++ {
		// Jitter the sub-pixel position, then map to viewport coordinates.
		u := (float64(x) + random.Float64()) / float64(rt.width)
		v := (float64(y) + random.Float64()) / float64(rt.height)

		ray := camera.GetRay(u, v)
		ray.Direction = ray.Direction.Normalize()

		ps.AddSample(rt.integrator.RayColor(ray, rt.config.MaxDepth, rt.scene, random))
	}
}

// RenderPass renders the full frame single-threaded and returns the
// tone-mapped image buffer.
func (rt *Raytracer) RenderPass() (*ImageBuffer, RenderStats) {
	buf := NewImageBuffer(rt.width, rt.height)
	stats := RenderStats{TotalPixels: rt.width * rt.height}

	for y := rt.height - 1; y >= 0; y-- {
		for x := 0; x < rt.width; x++ {
			var ps PixelStats
			rt.samplePixel(x, y, &ps, rt.random, rt.config.SamplesPerPixel)
			buf.Set(x, y, ps.Color())
			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return buf, stats
}

// RenderProgressive spreads the sample budget over the given number of
// passes, invoking fn with a tone-mapped snapshot after each pass.
// Accumulation carries across passes, so the final snapshot averages
// the full SamplesPerPixel budget.
func (rt *Raytracer) RenderProgressive(passes int, fn func(pass, totalPasses int, buf *ImageBuffer, stats RenderStats)) {
	if passes < 1 {
		passes = 1
	}

	pixelStats := make([][]PixelStats, rt.height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, rt.width)
	}

	samplesPerPass := rt.config.SamplesPerPixel / passes
	if samplesPerPass < 1 {
		samplesPerPass = 1
	}

	for pass := 1; pass <= passes; pass++ {
		n := samplesPerPass
		if pass == passes {
			// The last pass absorbs the remainder of the budget.
			remainder := rt.config.SamplesPerPixel - samplesPerPass*passes
			if remainder > 0 {
				n += remainder
			}
		}

		stats := RenderStats{TotalPixels: rt.width * rt.height}
		buf := NewImageBuffer(rt.width, rt.height)
		for y := rt.height - 1; y >= 0; y-- {
			for x := 0; x < rt.width; x++ {
				ps := &pixelStats[y][x]
				rt.samplePixel(x, y, ps, rt.random, n)
				buf.Set(x, y, ps.Color())
				stats.TotalSamples += ps.SampleCount
			}
		}

		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
		fn(pass, passes, buf, stats)
	}
}
