package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextStyle describes one outlined text pass.
type TextStyle struct {
	Face    font.Face
	Fill    color.Color
	Outline color.Color
	Radius  int // outline reach in pixels; 0 disables the outline
}

// DrawOutlined draws text with its top-left corner at (x, y). The outline is
// produced by stamping the text in the outline color at every offset within
// Radius (24 stamps for radius 2) before the fill pass.
// With center set, x is treated as the horizontal midpoint of the text.
func DrawOutlined(dst draw.Image, text string, x, y int, ts TextStyle, center bool) {
	if text == "" || ts.Face == nil {
		return
	}
	if center {
		minX, w := measureText(ts.Face, text)
		x -= minX + w/2
	}
	baseline := y + ts.Face.Metrics().Ascent.Ceil()

	d := &font.Drawer{Dst: dst, Face: ts.Face}
	if ts.Outline != nil {
		d.Src = image.NewUniform(ts.Outline)
		for dx := -ts.Radius; dx <= ts.Radius; dx++ {
			for dy := -ts.Radius; dy <= ts.Radius; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				d.Dot = fixed.P(x+dx, baseline+dy)
				d.DrawString(text)
			}
		}
	}
	d.Src = image.NewUniform(ts.Fill)
	d.Dot = fixed.P(x, baseline)
	d.DrawString(text)
}

// measureText returns the left edge and pixel width of the inked bounding
// box of text relative to the pen position. Faces that report no glyph
// bounds fall back to the advance width.
func measureText(face font.Face, text string) (minX, width int) {
	bounds, advance := font.BoundString(face, text)
	if w := (bounds.Max.X - bounds.Min.X).Ceil(); w > 0 {
		return bounds.Min.X.Floor(), w
	}
	return 0, advance.Ceil()
}
