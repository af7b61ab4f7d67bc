package imagepkg

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// ParseFormat maps "png", "jpg", "jpeg" (any case, optional leading dot)
// to an imaging.Format.
func ParseFormat(name string) (imaging.Format, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	switch name {
	case "", "png":
		return imaging.PNG, nil
	case "jpg", "jpeg":
		return imaging.JPEG, nil
	}
	return 0, fmt.Errorf("unsupported output format %q: use png or jpeg", name)
}

// ContentType returns the MIME type for f.
func ContentType(f imaging.Format) string {
	if f == imaging.JPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Encode writes img to w. quality only affects JPEG output.
func Encode(w io.Writer, img image.Image, f imaging.Format, quality int) error {
	var opts []imaging.EncodeOption
	if f == imaging.JPEG && quality > 0 {
		opts = append(opts, imaging.JPEGQuality(quality))
	}
	if err := imaging.Encode(w, img, f, opts...); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}
