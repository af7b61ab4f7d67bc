package imagepkg

import (
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// inkBounds returns the bounding box of pixels matching keep.
func inkBounds(img *image.RGBA, keep func(color.RGBA) bool) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if keep(img.RGBAAt(x, y)) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestDrawOutlinedStrokeWidth(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 120, 40))
	DrawOutlined(dst, "Hi", 20, 10, TextStyle{
		Face:    basicfont.Face7x13,
		Fill:    red,
		Outline: blue,
		Radius:  2,
	}, false)

	fill := inkBounds(dst, func(c color.RGBA) bool { return c == color.RGBA{R: 255, A: 255} })
	ink := inkBounds(dst, func(c color.RGBA) bool { return c.A > 0 })
	if fill.Empty() {
		t.Fatal("expected fill pixels")
	}
	if want := fill.Inset(-2); ink != want {
		t.Errorf("expected ink bounds %v (fill grown by 2), got %v", want, ink)
	}
	if got := dst.RGBAAt(fill.Min.X-2, fill.Min.Y+fill.Dy()/2); got.A > 0 && got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("expected outline color at stroke edge, got %v", got)
	}
}

func TestDrawOutlinedTopAnchor(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 60))
	DrawOutlined(dst, "H", 10, 20, TextStyle{Face: basicfont.Face7x13, Fill: red}, false)

	ink := inkBounds(dst, func(c color.RGBA) bool { return c.A > 0 })
	if ink.Min.Y < 20 {
		t.Errorf("expected text below y=20, got top %d", ink.Min.Y)
	}
	if ink.Min.Y > 20+basicfont.Face7x13.Ascent {
		t.Errorf("expected text to start within one ascent of y=20, got top %d", ink.Min.Y)
	}
}

func TestDrawOutlinedCentered(t *testing.T) {
	fonts, err := NewFontProvider("")
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"HH", "Tech Summit 2024", "Convention Center"} {
		dst := image.NewRGBA(image.Rect(0, 0, 800, 100))
		DrawOutlined(dst, text, 400, 20, TextStyle{
			Face:    fonts.Face(32),
			Fill:    red,
			Outline: blue,
			Radius:  2,
		}, true)

		ink := inkBounds(dst, func(c color.RGBA) bool { return c.A > 0 })
		mid := float64(ink.Min.X+ink.Max.X) / 2
		if math.Abs(mid-400) > 1 {
			t.Errorf("%q: expected midpoint within 1px of 400, got %.1f (ink %v)", text, mid, ink)
		}
	}
}

func TestDrawOutlinedNoOutline(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 30))
	DrawOutlined(dst, "X", 5, 5, TextStyle{Face: basicfont.Face7x13, Fill: red}, false)

	ink := inkBounds(dst, func(c color.RGBA) bool { return c.A > 0 })
	fill := inkBounds(dst, func(c color.RGBA) bool { return c == color.RGBA{R: 255, A: 255} })
	if ink != fill {
		t.Errorf("expected only fill pixels without an outline color, ink %v fill %v", ink, fill)
	}
}

func TestDrawOutlinedEmptyText(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawOutlined(dst, "", 10, 10, TextStyle{Face: basicfont.Face7x13, Fill: red, Outline: blue, Radius: 2}, true)
	if !inkBounds(dst, func(c color.RGBA) bool { return c.A > 0 }).Empty() {
		t.Error("expected nothing drawn")
	}
}

func TestMeasureTextFallsBackToAdvance(t *testing.T) {
	fonts, err := NewFontProvider("")
	if err != nil {
		t.Fatal(err)
	}
	face := fonts.Face(20)
	minX, w := measureText(face, "   ")
	if want := font.MeasureString(face, "   ").Ceil(); minX != 0 || w != want || w == 0 {
		t.Errorf("expected (0, %d) for blank text, got (%d, %d)", want, minX, w)
	}
}
