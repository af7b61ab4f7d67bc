package poster

import "strings"

// AspectRatio is one selectable output shape.
type AspectRatio struct {
	Label  string `json:"label"`
	Name   string `json:"name"`
	Ratio  string `json:"ratio"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

var aspectRatios = []AspectRatio{
	{Label: "1:1 - Square", Name: "Square", Ratio: "1:1", Width: 1024, Height: 1024},
	{Label: "2:3 - Portrait", Name: "Portrait", Ratio: "2:3", Width: 683, Height: 1024},
	{Label: "3:2 - Landscape", Name: "Landscape", Ratio: "3:2", Width: 1024, Height: 683},
	{Label: "3:4 - Poster", Name: "Poster", Ratio: "3:4", Width: 768, Height: 1024},
	{Label: "16:9 - Widescreen", Name: "Widescreen", Ratio: "16:9", Width: 1024, Height: 576},
}

// DefaultAspect is used for unknown labels.
var DefaultAspect = aspectRatios[0]

// AspectRatios lists the selectable shapes in display order.
func AspectRatios() []AspectRatio {
	return append([]AspectRatio(nil), aspectRatios...)
}

// LookupAspect resolves a full label ("3:4 - Poster"), a name ("poster") or
// a ratio ("3:4"). Unknown values yield DefaultAspect and false.
func LookupAspect(s string) (AspectRatio, bool) {
	s = strings.TrimSpace(s)
	for _, a := range aspectRatios {
		if s == a.Label || s == a.Ratio || strings.EqualFold(s, a.Name) {
			return a, true
		}
	}
	return DefaultAspect, false
}

// Dimensions returns the output size for label.
func Dimensions(label string) (width, height int) {
	a, _ := LookupAspect(label)
	return a.Width, a.Height
}
