package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FaceResolver hands out font faces by pixel size.
type FaceResolver interface {
	Face(size float64) font.Face
}

// Content is what gets laid over the background. Logo and Badge must already
// be normalized (see ProcessLogo); nil skips them.
type Content struct {
	Subtitle string
	Details  string
	Logo     *image.NRGBA
	Badge    *image.NRGBA
}

// Composer lays text, logo and badge over a background.
type Composer struct {
	style Style
	fonts FaceResolver
}

// NewComposer returns a composer using st for every poster it builds.
func NewComposer(st Style, fonts FaceResolver) *Composer {
	return &Composer{style: st, fonts: fonts}
}

// Style returns the composer's styling.
func (c *Composer) Style() Style { return c.style }

// Compose builds the final opaque poster. The background is never modified.
//
// Order of operations:
//  0. flatten the background onto opaque black
//  1. darken a copy of the background with a uniform black wash
//  2. render subtitle and detail lines onto a separate transparent layer
//  3. paste the logo (top right) and badge (bottom left) onto the darkened base
//  4. flatten the text layer over the base and drop alpha
//
// A nil or empty background is replaced by the gradient fallback.
func (c *Composer) Compose(bg image.Image, content Content) *image.NRGBA {
	if bg == nil || bg.Bounds().Empty() {
		bg = FallbackBackground(1024, 1024)
	}
	w, h := bg.Bounds().Dx(), bg.Bounds().Dy()
	// Flatten onto opaque black so every later overlay has a non-zero
	// alpha sum. Opaque pixels come through unchanged.
	base := imaging.Overlay(imaging.New(w, h, color.NRGBA{A: 255}), bg, image.Pt(0, 0), 1.0)

	if c.style.DarkenAlpha > 0 {
		shade := imaging.New(w, h, color.NRGBA{A: c.style.DarkenAlpha})
		base = imaging.Overlay(base, shade, image.Pt(0, 0), 1.0)
	}

	g := NewGeometry(w, h, c.style)
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, line := range PlanText(g, content.Subtitle, content.Details) {
		DrawOutlined(layer, line.Text, w/2, line.Y, c.textStyle(g, line.Role), true)
	}

	m := c.style.LogoMargin
	if content.Logo != nil {
		pos := image.Pt(w-content.Logo.Bounds().Dx()-m, m)
		base = imaging.Overlay(base, content.Logo, pos, 1.0)
	}
	if content.Badge != nil {
		pos := image.Pt(m, h-content.Badge.Bounds().Dy()-m)
		base = imaging.Overlay(base, content.Badge, pos, 1.0)
	}

	return dropAlpha(imaging.Overlay(base, layer, image.Pt(0, 0), 1.0))
}

func (c *Composer) textStyle(g Geometry, role Role) TextStyle {
	ts := TextStyle{Outline: c.style.Outline, Radius: c.style.OutlineRadius}
	switch role {
	case RoleSubtitle:
		ts.Face = c.face(g.SubtitleSize)
		ts.Fill = c.style.SubtitleFill
	default:
		ts.Face = c.face(g.DetailSize)
		ts.Fill = c.style.DetailFill
	}
	return ts
}

func (c *Composer) face(size int) font.Face {
	if c.fonts == nil {
		return basicfont.Face7x13
	}
	return c.fonts.Face(float64(size))
}

// dropAlpha forces every pixel opaque in place, keeping the color channels.
func dropAlpha(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}
