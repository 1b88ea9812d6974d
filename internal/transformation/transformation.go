package transformation

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	// Register the decoders image.Decode can pick from. imaging itself
	// registers bmp and tiff.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/Captaln/bp-control/internal/types"
	"github.com/disintegration/imaging"
)

// Decode returns the image together with the format name image.Decode
// detected ("jpeg", "png", ...).
func Decode(buffer []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

func SizeOf(img image.Image) types.Size {
	b := img.Bounds()
	return types.Size{Width: b.Dx(), Height: b.Dy()}
}

// ForceResize stretches img to exactly size. No cropping or aspect correction.
func ForceResize(img image.Image, size types.Size) (*image.NRGBA, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid resize target %s", size)
	}
	return imaging.Resize(img, size.Width, size.Height, imaging.Lanczos), nil
}

// Thumbnail fits img inside a bound x bound box keeping its aspect ratio.
// Images already inside the box are copied unchanged.
func Thumbnail(img image.Image, bound int) (*image.NRGBA, error) {
	if bound <= 0 {
		return nil, fmt.Errorf("invalid thumbnail bound %d", bound)
	}
	return imaging.Fit(img, bound, bound, imaging.Lanczos), nil
}

func SolidFill(size types.Size, c color.Color) (*image.NRGBA, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %s", size)
	}
	return imaging.New(size.Width, size.Height, c), nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("error while encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
