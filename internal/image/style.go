package imagepkg

import "image/color"

// Style holds every tunable of the poster layout. It is passed by value into
// the Composer so alternate stylings can be tested side by side.
type Style struct {
	BaseDivisor   float64 // base font size = min(w,h) / BaseDivisor
	SubtitleScale float64
	DetailScale   float64
	StartDivisor  float64 // vertical start = height / StartDivisor
	SubtitleGap   float64 // multiple of base size
	LineGap       float64 // multiple of detail size

	OutlineRadius int
	SubtitleFill  color.NRGBA
	DetailFill    color.NRGBA
	Outline       color.NRGBA
	DarkenAlpha   uint8

	LogoMaxSize int
	LogoMargin  int
}

// DefaultStyle returns the stock poster look: white subtitle, light gray
// details, 2px black outline and an 80/255 black wash.
func DefaultStyle() Style {
	return Style{
		BaseDivisor:   15,
		SubtitleScale: 0.8,
		DetailScale:   0.5,
		StartDivisor:  3,
		SubtitleGap:   1.2,
		LineGap:       1.5,
		OutlineRadius: 2,
		SubtitleFill:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		DetailFill:    color.NRGBA{R: 211, G: 211, B: 211, A: 255},
		Outline:       color.NRGBA{A: 255},
		DarkenAlpha:   80,
		LogoMaxSize:   DefaultLogoMaxSize,
		LogoMargin:    40,
	}
}

var (
	// FallbackTop and FallbackBottom are the gradient stops used when no
	// generated background is available.
	FallbackTop    = color.NRGBA{R: 100, G: 150, B: 255, A: 255}
	FallbackBottom = color.NRGBA{R: 150, G: 200, B: 255, A: 255}
)
