package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "FONT_PATH", "MAX_UPLOAD_BYTES", "MAX_LOGO_PIXELS", "JPEG_QUALITY",
		"RATE_LIMIT", "RATE_BURST", "HF_TOKEN", "HF_MODEL", "HF_ENDPOINT",
		"HF_TIMEOUT", "HF_RETRIES", "HF_BACKOFF", "POSTER_CONFIG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Provider.Model != "prompthero/openjourney" {
		t.Errorf("expected default model, got %s", cfg.Provider.Model)
	}
	if cfg.Provider.Timeout != 120*time.Second || cfg.Provider.Retries != 3 || cfg.Provider.Backoff != 15*time.Second {
		t.Errorf("unexpected provider defaults %+v", cfg.Provider)
	}
	if cfg.Provider.Token != "" {
		t.Error("expected no token")
	}
	if cfg.MaxLogoPixels != 40_000_000 {
		t.Errorf("expected 40M logo pixel cap, got %d", cfg.MaxLogoPixels)
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("HF_TOKEN", "tok")
	t.Setenv("HF_RETRIES", "5")
	t.Setenv("HF_BACKOFF", "2s")
	t.Setenv("RATE_LIMIT", "1.5")
	t.Setenv("JPEG_QUALITY", "not-a-number")
	t.Setenv("MAX_LOGO_PIXELS", "1000000")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9000" || cfg.Provider.Token != "tok" || cfg.Provider.Retries != 5 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Provider.Backoff != 2*time.Second {
		t.Errorf("expected 2s backoff, got %v", cfg.Provider.Backoff)
	}
	if cfg.RateLimit != 1.5 {
		t.Errorf("expected rate 1.5, got %v", cfg.RateLimit)
	}
	if cfg.MaxLogoPixels != 1_000_000 {
		t.Errorf("expected 1M logo pixel cap, got %d", cfg.MaxLogoPixels)
	}
	if cfg.JPEGQuality != 92 {
		t.Errorf("expected invalid value to keep default 92, got %d", cfg.JPEGQuality)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_POSTER_TOKEN", "from-env")
	path := filepath.Join(t.TempDir(), "poster.yaml")
	data := `
port: "7070"
provider:
  token: ${TEST_POSTER_TOKEN}
  backoff: 3s
style:
  darken_alpha: 0
  logo_max_size: 150
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POSTER_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "7070" {
		t.Errorf("expected port 7070, got %s", cfg.Port)
	}
	if cfg.Provider.Token != "from-env" {
		t.Errorf("expected expanded token, got %q", cfg.Provider.Token)
	}
	if cfg.Provider.Backoff != 3*time.Second {
		t.Errorf("expected 3s backoff, got %v", cfg.Provider.Backoff)
	}
	if cfg.Provider.Model != "prompthero/openjourney" {
		t.Errorf("expected env default kept for model, got %s", cfg.Provider.Model)
	}

	st := cfg.PosterStyle()
	if st.DarkenAlpha != 0 {
		t.Errorf("expected darken alpha 0, got %d", st.DarkenAlpha)
	}
	if st.LogoMaxSize != 150 {
		t.Errorf("expected logo max 150, got %d", st.LogoMaxSize)
	}
	if st.OutlineRadius != 2 {
		t.Errorf("expected default outline radius, got %d", st.OutlineRadius)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POSTER_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestPosterStyleDefaults(t *testing.T) {
	st := (&Config{}).PosterStyle()
	if st.DarkenAlpha != 80 || st.LogoMaxSize != 200 || st.LogoMargin != 40 {
		t.Errorf("unexpected default style %+v", st)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		min   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		l := NewLogger(&bytes.Buffer{}, tt.level)
		if !l.Enabled(context.Background(), tt.min) {
			t.Errorf("%s: expected %v enabled", tt.level, tt.min)
		}
		if l.Enabled(context.Background(), tt.min-1) {
			t.Errorf("%s: expected below %v disabled", tt.level, tt.min)
		}
	}
}
