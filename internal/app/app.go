// Package app assembles the poster generator from configuration.
package app

import (
	"log/slog"
	"net/http"

	"github.com/youruser/posterapp/internal/background"
	"github.com/youruser/posterapp/internal/config"
	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/poster"
)

// NewGenerator builds a generator with the configured font and background
// provider. Without an API token every poster uses the gradient background.
func NewGenerator(cfg *config.Config, logger *slog.Logger) (*poster.Generator, error) {
	fonts, err := imagepkg.NewFontProvider(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("font resolved", "source", fonts.Source(), "fallback", fonts.Fallback())
	return NewGeneratorWith(cfg, Provider(cfg, logger), fonts, logger), nil
}

// NewGeneratorWith builds a generator around an explicit provider and fonts.
func NewGeneratorWith(cfg *config.Config, p background.Provider, fonts imagepkg.FaceResolver, logger *slog.Logger) *poster.Generator {
	return poster.NewGenerator(p, imagepkg.NewComposer(cfg.PosterStyle(), fonts), logger)
}

// Provider returns the inference API client, or nil when no token is set.
func Provider(cfg *config.Config, logger *slog.Logger) background.Provider {
	pc := cfg.Provider
	if pc.Token == "" {
		logger.Warn("HF_TOKEN not set, posters will use the gradient background")
		return nil
	}
	hf := background.NewHuggingFace(pc.Token)
	if pc.Model != "" {
		hf.Model = pc.Model
	}
	if pc.Endpoint != "" {
		hf.Endpoint = pc.Endpoint
	}
	if pc.Retries > 0 {
		hf.Retries = pc.Retries
	}
	if pc.Backoff > 0 {
		hf.Backoff = pc.Backoff
	}
	if pc.Timeout > 0 {
		hf.Client = &http.Client{Timeout: pc.Timeout}
	}
	return hf
}
