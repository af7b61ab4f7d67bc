package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/youruser/posterapp/internal/util"
)

// DefaultMaxPixels bounds the canvas a decoded image may declare.
const DefaultMaxPixels = 40_000_000

// ErrTooLarge is returned for images whose header declares more pixels than
// the decode limit allows.
var ErrTooLarge = errors.New("image too large")

// DownloadImage fetches url and decodes the body as an image of at most
// maxPixels pixels.
func DownloadImage(ctx context.Context, url string, maxPixels int) (image.Image, error) {
	body, err := util.GetBytes(ctx, url, 10*time.Second)
	if err != nil {
		return nil, err
	}
	return DecodeImageLimit(body, maxPixels)
}

// DecodeImage decodes PNG, JPEG, GIF, BMP or TIFF data, honoring EXIF
// orientation. Images above DefaultMaxPixels are rejected.
func DecodeImage(data []byte) (image.Image, error) {
	return DecodeImageLimit(data, DefaultMaxPixels)
}

// DecodeImageLimit is DecodeImage with an explicit pixel limit. The header
// is checked before any pixel data is decoded; maxPixels <= 0 means
// DefaultMaxPixels.
func DecodeImageLimit(data []byte, maxPixels int) (image.Image, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, fmt.Errorf("decode image: %dx%d: %w", cfg.Width, cfg.Height, ErrTooLarge)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
