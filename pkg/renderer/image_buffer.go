package renderer

import (
	"image"
	"image/color"

	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/core"
)

// ImageBuffer is a width×height grid of float colors. Row 0 is the
// bottom of the image, matching the camera's v coordinate; writers
// flip to top-down scan order on output.
type ImageBuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImageBuffer allocates a black image buffer
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the horizontal extent in pixels
func (b *ImageBuffer) Width() int { return b.width }

// Height returns the vertical extent in pixels
func (b *ImageBuffer) Height() int { return b.height }

// At returns the color stored at (x, y)
func (b *ImageBuffer) At(x, y int) core.Vec3 {
	return b.pixels[y*b.width+x]
}

// Set stores a color at (x, y)
func (b *ImageBuffer) Set(x, y int, c core.Vec3) {
	b.pixels[y*b.width+x] = c
}

// ToRGBA quantizes the buffer into an 8-bit RGBA image. Stored colors
// are expected to be tone-mapped already (gamma applied, clamped to
// [0,1]); this only scales and flips to top-down row order.
func (b *ImageBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.At(x, y)
			img.SetRGBA(x, b.height-1-y, color.RGBA{
				R: uint8(255.999 * c.X),
				G: uint8(255.999 * c.Y),
				B: uint8(255.999 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
