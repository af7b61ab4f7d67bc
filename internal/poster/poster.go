// Package poster is the single entry point that turns a prompt and some
// text into a finished poster image.
package poster

import (
	"context"
	"errors"
	"image"
	"log/slog"

	"github.com/youruser/posterapp/internal/background"
	imagepkg "github.com/youruser/posterapp/internal/image"
)

// Request carries already-validated user input.
type Request struct {
	Prompt      string
	Subtitle    string
	Details     string
	Logo        image.Image // optional
	AspectRatio string
	QRText      string // optional; rendered as a badge in the bottom-left corner
}

// Result is always usable. The flags record which optional steps degraded.
type Result struct {
	Image              *image.NRGBA
	Aspect             AspectRatio
	BackgroundFallback bool
	LogoApplied        bool
	LogoDropped        bool
	BadgeDropped       bool
}

// Generator wires a background provider to a composer.
type Generator struct {
	provider background.Provider
	composer *imagepkg.Composer
	logger   *slog.Logger
}

// NewGenerator returns a generator. A nil provider means every poster uses
// the gradient fallback; a nil logger means slog.Default().
func NewGenerator(p background.Provider, c *imagepkg.Composer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{provider: p, composer: c, logger: logger}
}

// Generate never fails; faults in the background, logo or badge steps are
// logged and the step is skipped or replaced.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	aspect, ok := LookupAspect(req.AspectRatio)
	if !ok && req.AspectRatio != "" {
		g.logger.Warn("unknown aspect ratio, using default", "label", req.AspectRatio, "default", aspect.Label)
	}
	res := Result{Aspect: aspect}

	bg, fellBack := background.Fetch(ctx, g.provider, req.Prompt, aspect.Width, aspect.Height)
	res.BackgroundFallback = fellBack

	maxSize := g.composer.Style().LogoMaxSize
	content := imagepkg.Content{Subtitle: req.Subtitle, Details: req.Details}

	logo, err := imagepkg.ProcessLogo(req.Logo, maxSize)
	switch {
	case err != nil:
		g.logger.Warn("logo dropped", "error", err)
		res.LogoDropped = true
	case logo != nil:
		content.Logo = logo
		res.LogoApplied = true
	}

	if req.QRText != "" {
		badge, err := g.badge(req.QRText, maxSize)
		if err != nil {
			g.logger.Warn("qr badge dropped", "error", err)
			res.BadgeDropped = true
		}
		content.Badge = badge
	}

	res.Image = g.composer.Compose(bg, content)
	return res
}

func (g *Generator) badge(text string, size int) (*image.NRGBA, error) {
	qr, err := imagepkg.GenerateQRImage(text, size)
	if err != nil {
		return nil, err
	}
	badge, err := imagepkg.ProcessLogo(qr, size)
	if badge == nil && err == nil {
		err = errors.New("empty qr image")
	}
	return badge, err
}
