package imagepkg

import (
	"bytes"
	"image/png"
	"testing"
)

func TestGenerateQRImage(t *testing.T) {
	img, err := GenerateQRImage("https://techsummit.com", 256)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("expected 256x256, got %v", b)
	}
}

func TestGenerateQRPNG(t *testing.T) {
	data, err := GenerateQRPNG("deck:example", 128)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Errorf("expected width 128, got %d", img.Bounds().Dx())
	}
}

func TestGenerateQRTooLong(t *testing.T) {
	if _, err := GenerateQRImage(string(bytes.Repeat([]byte("x"), 4000)), 128); err == nil {
		t.Error("expected error for content beyond QR capacity")
	}
}
