package imagepkg

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultLogoMaxSize bounds both logo dimensions when no size is given.
const DefaultLogoMaxSize = 200

// ErrLogo wraps every failure raised while normalizing a logo.
var ErrLogo = errors.New("logo processing failed")

// fitLogo is swapped out in tests to simulate resampling faults.
var fitLogo = imaging.Fit

// ProcessLogo returns an independent NRGBA copy of logo scaled down with
// Lanczos resampling so that neither side exceeds maxSize. Smaller logos are
// copied without scaling. A nil logo yields (nil, nil).
//
// Any fault, including a panic from a misbehaving image.Image, is reported as
// ErrLogo with a nil image; callers treat that as "no logo".
func ProcessLogo(logo image.Image, maxSize int) (out *image.NRGBA, err error) {
	if logo == nil {
		return nil, nil
	}
	if maxSize <= 0 {
		maxSize = DefaultLogoMaxSize
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrLogo, r)
		}
	}()

	b := logo.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrLogo, b.Dx(), b.Dy())
	}

	// Fit returns a clone when the source already fits.
	out = fitLogo(logo, maxSize, maxSize, imaging.Lanczos)
	if out == nil || out.Bounds().Empty() {
		return nil, fmt.Errorf("%w: resample produced no pixels", ErrLogo)
	}
	return out, nil
}
