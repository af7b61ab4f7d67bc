package imagepkg

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontProvider resolves pixel-sized faces from one parsed font.
// Faces are created per call because an opentype face is not safe for
// concurrent use.
type FontProvider struct {
	parsed   *opentype.Font
	source   string
	fallback bool
}

// NewFontProvider loads the TTF/OTF at path. When path is empty, unreadable
// or unparsable the embedded Go Regular font is used instead and the
// provider reports Fallback() == true.
func NewFontProvider(path string) (*FontProvider, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			parsed, perr := opentype.Parse(data)
			if perr == nil {
				return &FontProvider{parsed: parsed, source: path}, nil
			}
			err = perr
		}
		slog.Warn("font unavailable, using embedded Go Regular", "path", path, "error", err)
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return &FontProvider{parsed: parsed, source: "goregular", fallback: true}, nil
}

// Source names the font actually in use.
func (fp *FontProvider) Source() string { return fp.source }

// Fallback reports whether the requested font file was replaced.
func (fp *FontProvider) Fallback() bool { return fp.fallback }

// Face returns a face whose em size is size pixels. It never fails: if the
// face cannot be built the fixed 7x13 bitmap font is returned.
func (fp *FontProvider) Face(size float64) font.Face {
	if fp == nil || fp.parsed == nil || size <= 0 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(fp.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		slog.Warn("font face unavailable, using basic font", "size", size, "error", err)
		return basicfont.Face7x13
	}
	return face
}
