// Package config loads runtime settings from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	imagepkg "github.com/youruser/posterapp/internal/image"
)

type Config struct {
	Port           string         `yaml:"port"`
	LogLevel       string         `yaml:"log_level"`
	FontPath       string         `yaml:"font_path"`
	MaxUploadBytes int64          `yaml:"max_upload_bytes"`
	MaxLogoPixels  int            `yaml:"max_logo_pixels"` // decoded logo width*height cap
	JPEGQuality    int            `yaml:"jpeg_quality"`
	RateLimit      float64        `yaml:"rate_limit"` // poster requests per second per client
	RateBurst      int            `yaml:"rate_burst"`
	Provider       ProviderConfig `yaml:"provider"`
	Style          StyleConfig    `yaml:"style"`
}

// ProviderConfig configures the background generator.
type ProviderConfig struct {
	Token    string        `yaml:"token"`
	Model    string        `yaml:"model"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	Retries  int           `yaml:"retries"`
	Backoff  time.Duration `yaml:"backoff"`
}

// StyleConfig overrides parts of the default poster style. Zero values keep
// the default.
type StyleConfig struct {
	DarkenAlpha   *int `yaml:"darken_alpha"`
	OutlineRadius *int `yaml:"outline_radius"`
	LogoMaxSize   int  `yaml:"logo_max_size"`
	LogoMargin    *int `yaml:"logo_margin"`
}

// Load reads the environment and, when POSTER_CONFIG is set, overlays that
// YAML file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           envOr("PORT", "8080"),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		FontPath:       envOr("FONT_PATH", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),
		MaxUploadBytes: envInt64Or("MAX_UPLOAD_BYTES", 10<<20),
		MaxLogoPixels:  envIntOr("MAX_LOGO_PIXELS", imagepkg.DefaultMaxPixels),
		JPEGQuality:    envIntOr("JPEG_QUALITY", 92),
		RateLimit:      envFloatOr("RATE_LIMIT", 0.5),
		RateBurst:      envIntOr("RATE_BURST", 3),
		Provider: ProviderConfig{
			Token:    os.Getenv("HF_TOKEN"),
			Model:    envOr("HF_MODEL", "prompthero/openjourney"),
			Endpoint: envOr("HF_ENDPOINT", "https://api-inference.huggingface.co"),
			Timeout:  envDurationOr("HF_TIMEOUT", 120*time.Second),
			Retries:  envIntOr("HF_RETRIES", 3),
			Backoff:  envDurationOr("HF_BACKOFF", 15*time.Second),
		},
	}
	if path := os.Getenv("POSTER_CONFIG"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// envVarPattern matches ${VAR_NAME}.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(m string) string {
		return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(m, "${"), "}"))
	})
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// PosterStyle returns the default style with the configured overrides.
func (c *Config) PosterStyle() imagepkg.Style {
	st := imagepkg.DefaultStyle()
	if v := c.Style.DarkenAlpha; v != nil && *v >= 0 && *v <= 255 {
		st.DarkenAlpha = uint8(*v)
	}
	if v := c.Style.OutlineRadius; v != nil && *v >= 0 {
		st.OutlineRadius = *v
	}
	if c.Style.LogoMaxSize > 0 {
		st.LogoMaxSize = c.Style.LogoMaxSize
	}
	if v := c.Style.LogoMargin; v != nil && *v >= 0 {
		st.LogoMargin = *v
	}
	return st
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
