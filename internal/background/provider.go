// Package background supplies the base image a poster is drawn on.
package background

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	imagepkg "github.com/youruser/posterapp/internal/image"
)

// Provider produces a width x height background for a prompt.
type Provider interface {
	Fetch(ctx context.Context, prompt string, width, height int) (image.Image, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, prompt string, width, height int) (image.Image, error)

func (f ProviderFunc) Fetch(ctx context.Context, prompt string, width, height int) (image.Image, error) {
	return f(ctx, prompt, width, height)
}

// Gradient always returns the fallback gradient.
var Gradient Provider = ProviderFunc(func(_ context.Context, _ string, width, height int) (image.Image, error) {
	return imagepkg.FallbackBackground(width, height), nil
})

// File serves one image from disk, cropped and scaled to the requested size.
type File struct {
	Path string
}

func (f File) Fetch(_ context.Context, _ string, width, height int) (image.Image, error) {
	img, err := imaging.Open(f.Path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open background %s: %w", f.Path, err)
	}
	return conform(img, width, height), nil
}

// Fetch asks p for a background and substitutes the gradient fallback on any
// failure. fellBack reports whether the substitution happened.
func Fetch(ctx context.Context, p Provider, prompt string, width, height int) (img image.Image, fellBack bool) {
	if p == nil {
		return imagepkg.FallbackBackground(width, height), true
	}
	img, err := p.Fetch(ctx, prompt, width, height)
	if err == nil && img != nil && !img.Bounds().Empty() {
		return img, false
	}
	if err == nil {
		err = fmt.Errorf("provider returned no pixels")
	}
	slog.Warn("background unavailable, using gradient fallback", "error", err, "width", width, "height", height)
	return imagepkg.FallbackBackground(width, height), true
}

// conform crops and scales img to exactly width x height, keeping it
// centered.
func conform(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
}
