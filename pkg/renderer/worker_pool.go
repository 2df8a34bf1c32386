package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// bandHeight is the number of image rows per parallel task. Bands are
// disjoint, so workers never write the same buffer cell.
const bandHeight = 16

type bandTask struct {
	index int // Band index, also the seed offset for determinism
	yMin  int
	yMax  int // Exclusive
}

// RenderParallel renders the frame with the given number of workers,
// splitting rows into disjoint bands. Each band owns a generator
// seeded from the base seed plus its band index, so the output is
// identical for any worker count. Zero or negative workers means one
// per CPU.
func (rt *Raytracer) RenderParallel(numWorkers int) (*ImageBuffer, RenderStats) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	numBands := (rt.height + bandHeight - 1) / bandHeight
	tasks := make(chan bandTask, numBands)
	results := make(chan RenderStats, numBands)

	buf := NewImageBuffer(rt.width, rt.height)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				random := rand.New(rand.NewSource(rt.config.Seed + int64(task.index)))
				stats := RenderStats{TotalPixels: (task.yMax - task.yMin) * rt.width}

				for y := task.yMin; y < task.yMax; y++ {
					for x := 0; x < rt.width; x++ {
						var ps PixelStats
						rt.samplePixel(x, y, &ps, random, rt.config.SamplesPerPixel)
						buf.Set(x, y, ps.Color())
						stats.TotalSamples += ps.SampleCount
					}
				}

				results <- stats
			}
		}()
	}

	for i := 0; i < numBands; i++ {
		yMin := i * bandHeight
		yMax := min(yMin+bandHeight, rt.height)
		tasks <- bandTask{index: i, yMin: yMin, yMax: yMax}
	}
	close(tasks)

	wg.Wait()
	close(results)

	total := RenderStats{}
	for stats := range results {
		total.TotalPixels += stats.TotalPixels
		total.TotalSamples += stats.TotalSamples
	}
	total.AverageSamples = float64(total.TotalSamples) / float64(total.TotalPixels)

	return buf, total
}
