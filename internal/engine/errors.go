package engine

import "fmt"

// Image labels used in error reports.
const (
	ImageBase    = "base"
	ImageOverlay = "overlay"
	ImageLayer   = "layer"
)

func subject(image string, index int) string {
	if image == ImageLayer {
		return fmt.Sprintf("layer %d", index)
	}
	return image + " image"
}

// DecodeError reports input bytes that no registered codec recognizes.
// Index is only meaningful when Image is ImageLayer.
type DecodeError struct {
	Image string
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", subject(e.Image, e.Index), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportDecodeError reports a payload that is not valid base64 or a data
// URL without a comma separator.
type TransportDecodeError struct {
	Image string
	Index int
	Err   error
}

func (e *TransportDecodeError) Error() string {
	return fmt.Sprintf("%s: %v", subject(e.Image, e.Index), e.Err)
}

func (e *TransportDecodeError) Unwrap() error { return e.Err }

// EncodeError reports a result grid that could not be serialized.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("result image: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// InvalidLayerTypeError reports a layer value that is not a string.
type InvalidLayerTypeError struct {
	Index int
	Got   string
}

func (e *InvalidLayerTypeError) Error() string {
	return fmt.Sprintf("layer %d: layer data must be a string, got %s", e.Index, e.Got)
}

// InvalidDimensionsError reports a preview target that is not positive or
// exceeds MaxPixels. MaxPixels is zero when the target was not positive.
type InvalidDimensionsError struct {
	Width     int
	Height    int
	MaxPixels int
}

func (e *InvalidDimensionsError) Error() string {
	if e.MaxPixels > 0 {
		return fmt.Sprintf("invalid preview dimensions %dx%d: exceeds the limit of %d pixels", e.Width, e.Height, e.MaxPixels)
	}
	return fmt.Sprintf("invalid preview dimensions %dx%d: width and height must be positive", e.Width, e.Height)
}
