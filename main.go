package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/renderer"
	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/scene"
	"github.com/hamedsabri/RayTracingInOneWeekend/web/server"
)

func main() {
	width := flag.Int("width", 384, "Width of the image")
	height := flag.Int("height", 256, "Height of the image")
	output := flag.String("output", "out.ppm", "Output file")
	samplesPerPixel := flag.Int("samplesPerPixel", 100, "Number of samples per-pixel")
	rayBounceLimit := flag.Int("rayBounceLimit", 50, "Number of bounces possible for a ray until termination")
	seed := flag.Int64("seed", 42, "Random seed for reproducible renders")
	workers := flag.Int("workers", 1, "Number of render workers (0 = one per CPU)")
	serve := flag.Bool("serve", false, "Run the live preview server instead of rendering to a file")
	port := flag.Int("port", 8080, "Preview server port")
	flag.Parse()

	if *serve {
		srv := server.NewServer(*port)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Preview server failed: %v\n", err)
			os.Exit(-1)
		}
		return
	}

	s := scene.NewMetalScene(float64(*width) / float64(*height))
	rt := renderer.NewRaytracer(s, *width, *height)
	rt.SetConfig(renderer.Config{
		SamplesPerPixel: *samplesPerPixel,
		MaxDepth:        *rayBounceLimit,
		Seed:            *seed,
	})

	startTime := time.Now()
	var buf *renderer.ImageBuffer
	var stats renderer.RenderStats
	if *workers == 1 {
		buf, stats = rt.RenderPass()
	} else {
		buf, stats = rt.RenderParallel(*workers)
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%d samples, %.1f per pixel)\n",
		renderTime, stats.TotalSamples, stats.AverageSamples)

	if err := renderer.WritePPM(buf, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(-1)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
