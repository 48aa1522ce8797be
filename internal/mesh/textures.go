package mesh

import (
	"image"
	"image/color"
)

// Checkerboard renders a size x size checker pattern with cells cells
// per side, alternating dark and light gray.
func Checkerboard(size, cells int) *image.RGBA {
	if cells < 1 {
		cells = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	dark := color.RGBA{R: 60, G: 60, B: 60, A: 255}
	light := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dark
			if (x/cell+y/cell)%2 == 0 {
				c = light
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// NeutralNormalMap returns a flat tangent-space normal map, every texel
// encoding the +Z normal (128, 128, 255).
func NeutralNormalMap(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	up := color.RGBA{R: 128, G: 128, B: 255, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, up)
		}
	}
	return img
}
