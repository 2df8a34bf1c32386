package scene

import (
	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/core"
	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/geometry"
	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/material"
	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/renderer"
)

// NewMetalScene builds the reference scene: a diffuse sphere resting
// on a large diffuse ground sphere, flanked by two fuzzy metal
// spheres, under the white-to-sky-blue gradient.
func NewMetalScene(aspectRatio float64) *Scene {
	s := &Scene{
		Camera:      renderer.NewCamera(aspectRatio),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}

	// Diffuse center sphere.
	s.Shapes = append(s.Shapes, geometry.NewSphere(
		core.NewVec3(0, 0, -1),
		0.5,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)),
	))

	// Ground, also diffuse.
	s.Shapes = append(s.Shapes, geometry.NewSphere(
		core.NewVec3(0, -100.5, -1),
		100,
		material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)),
	))

	// Reflective metal spheres with some fuzziness.
	s.Shapes = append(s.Shapes, geometry.NewSphere(
		core.NewVec3(1, 0, -1),
		0.5,
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0),
	))
	s.Shapes = append(s.Shapes, geometry.NewSphere(
		core.NewVec3(-1, 0, -1),
		0.5,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3),
	))

	return s
}
