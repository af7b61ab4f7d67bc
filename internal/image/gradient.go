package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Gradient returns an opaque width x height image that fades vertically from
// top to bottom. Row y uses ratio y/height, so the last row stops one step
// short of bottom.
func Gradient(width, height int, top, bottom color.NRGBA) *image.NRGBA {
	img := imaging.New(width, height, top)
	if width <= 0 || height <= 0 {
		return img
	}
	for y := 0; y < height; y++ {
		ratio := float64(y) / float64(height)
		c := color.NRGBA{
			R: lerp(top.R, bottom.R, ratio),
			G: lerp(top.G, bottom.G, ratio),
			B: lerp(top.B, bottom.B, ratio),
			A: 255,
		}
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return img
}

// FallbackBackground is the placeholder used whenever the background
// provider cannot deliver.
func FallbackBackground(width, height int) *image.NRGBA {
	return Gradient(width, height, FallbackTop, FallbackBottom)
}

func lerp(a, b uint8, ratio float64) uint8 {
	return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
}
