package imagepkg

import "strings"

// Geometry holds the sizes and offsets derived from the canvas dimensions.
type Geometry struct {
	Width, Height int
	BaseSize      int
	SubtitleSize  int
	DetailSize    int
	StartY        int
	SubtitleGap   int
	LineGap       int
}

// NewGeometry derives the layout scalars for a width x height canvas.
func NewGeometry(width, height int, st Style) Geometry {
	base := int(float64(min(width, height)) / st.BaseDivisor)
	detail := int(float64(base) * st.DetailScale)
	return Geometry{
		Width:        width,
		Height:       height,
		BaseSize:     base,
		SubtitleSize: int(float64(base) * st.SubtitleScale),
		DetailSize:   detail,
		StartY:       int(float64(height) / st.StartDivisor),
		SubtitleGap:  int(float64(base) * st.SubtitleGap),
		LineGap:      int(float64(detail) * st.LineGap),
	}
}

// Role tells which font and fill a placed line uses.
type Role int

const (
	RoleSubtitle Role = iota
	RoleDetail
)

// PlacedLine is one line of text with the y of its top edge. Lines are
// horizontally centered on the canvas midpoint.
type PlacedLine struct {
	Text string
	Y    int
	Role Role
}

// SplitLines trims every line of s and drops the ones left empty.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// PlanText stacks the subtitle and the detail lines top-down from StartY.
// Only an empty subtitle is skipped; it is drawn as given, untrimmed.
func PlanText(g Geometry, subtitle, details string) []PlacedLine {
	var lines []PlacedLine
	y := g.StartY
	if subtitle != "" {
		lines = append(lines, PlacedLine{Text: subtitle, Y: y, Role: RoleSubtitle})
		y += g.SubtitleGap
	}
	for _, line := range SplitLines(details) {
		lines = append(lines, PlacedLine{Text: line, Y: y, Role: RoleDetail})
		y += g.LineGap
	}
	return lines
}
