package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/nami2111/nft-studio/internal/compositor"
)

// MimePNG is the MIME type of every encoded composite.
const MimePNG = "image/png"

// DefaultMaxPixels is the largest image, in pixels, that is decoded or
// generated unless a different limit is configured.
const DefaultMaxPixels = 64 << 20

// ErrImageTooLarge is wrapped by errors for images over the pixel limit.
var ErrImageTooLarge = errors.New("image too large")

// CheckPixels reports an error wrapping ErrImageTooLarge when a width x height
// image exceeds maxPixels. A maxPixels of zero or less disables the check.
func CheckPixels(width, height, maxPixels int) error {
	if maxPixels <= 0 {
		return nil
	}
	// Division keeps huge dimensions from overflowing the product.
	if width > maxPixels || height > maxPixels || (height > 0 && width > maxPixels/height) {
		return fmt.Errorf("%w: %dx%d exceeds the limit of %d pixels", ErrImageTooLarge, width, height, maxPixels)
	}
	return nil
}

// Compression selects the zlib effort used for PNG output.
type Compression string

// Supported PNG compression settings.
const (
	CompressionDefault Compression = "default"
	CompressionNone    Compression = "none"
	CompressionFast    Compression = "fast"
	CompressionBest    Compression = "best"
)

// ParseCompression validates a PNG compression name. The empty string means
// CompressionDefault.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(s); c {
	case "":
		return CompressionDefault, nil
	case CompressionDefault, CompressionNone, CompressionFast, CompressionBest:
		return c, nil
	default:
		return "", fmt.Errorf("unknown png compression: %s", s)
	}
}

func (c Compression) level() png.CompressionLevel {
	switch c {
	case CompressionNone:
		return png.NoCompression
	case CompressionFast:
		return png.BestSpeed
	case CompressionBest:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

// Decode decodes an encoded image into a grid of straight-alpha RGBA8
// pixels.
//
// Any format with a registered decoder is accepted: PNG, JPEG and GIF from
// the standard library plus BMP, TIFF and WebP from golang.org/x/image.
// Premultiplied, paletted, gray and YCbCr images are converted to
// non-premultiplied RGBA, and the bounds are shifted to start at (0, 0).
func Decode(data []byte) (*compositor.Grid, error) {
	return DecodeLimit(data, 0)
}

// DecodeLimit is Decode with a pixel limit. The dimensions are read from the
// image header first, so an oversized image is rejected before any pixel
// memory is allocated.
func DecodeLimit(data []byte, maxPixels int) (*compositor.Grid, error) {
	if maxPixels > 0 {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		if err := CheckPixels(cfg.Width, cfg.Height, maxPixels); err != nil {
			return nil, err
		}
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return compositor.FromNRGBA(imaging.Clone(img)), nil
}

// EncodePNG encodes a grid as PNG.
func EncodePNG(g *compositor.Grid, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, g.NRGBA(), imaging.PNG, imaging.PNGCompressionLevel(c.level())); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
