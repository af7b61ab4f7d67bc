package background

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	imagepkg "github.com/youruser/posterapp/internal/image"
)

func TestFetchFallsBack(t *testing.T) {
	failing := ProviderFunc(func(context.Context, string, int, int) (image.Image, error) {
		return nil, errors.New("boom")
	})
	empty := ProviderFunc(func(context.Context, string, int, int) (image.Image, error) {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil
	})

	for name, p := range map[string]Provider{"failing": failing, "empty": empty, "nil": nil} {
		img, fellBack := Fetch(context.Background(), p, "prompt", 30, 20)
		if !fellBack {
			t.Errorf("%s: expected fallback", name)
		}
		if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
			t.Errorf("%s: expected 30x20, got %v", name, b)
		}
		if got := color.NRGBAModel.Convert(img.At(0, 0)); got != imagepkg.FallbackTop {
			t.Errorf("%s: expected gradient top %v, got %v", name, imagepkg.FallbackTop, got)
		}
	}
}

func TestFetchPassesThrough(t *testing.T) {
	want := imagepkg.Gradient(10, 10, color.NRGBA{A: 255}, color.NRGBA{R: 255, A: 255})
	p := ProviderFunc(func(context.Context, string, int, int) (image.Image, error) {
		return want, nil
	})
	img, fellBack := Fetch(context.Background(), p, "prompt", 10, 10)
	if fellBack || img != image.Image(want) {
		t.Error("expected provider image returned as is")
	}
}

func TestGradientProvider(t *testing.T) {
	img, err := Gradient.Fetch(context.Background(), "", 12, 8)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("expected 12x8, got %v", b)
	}
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	if err := os.WriteFile(path, pngBytes(t, 300, 100), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := File{Path: path}.Fetch(context.Background(), "", 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("expected 100x100, got %v", b)
	}

	if _, err := (File{Path: filepath.Join(t.TempDir(), "missing.png")}).Fetch(context.Background(), "", 10, 10); err == nil {
		t.Error("expected error for missing file")
	}
}
