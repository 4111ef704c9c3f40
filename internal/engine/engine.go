package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/nami2111/nft-studio/internal/compositor"
	"github.com/nami2111/nft-studio/internal/imaging"
)

// Options configures an Engine. The zero value is usable: it selects the
// imaging Lanczos resampler, truncating blends, default PNG compression and
// imaging.DefaultMaxPixels.
type Options struct {
	Resampler   compositor.Resampler
	Rounding    compositor.Rounding
	Compression imaging.Compression

	// MaxPixels bounds every decoded input and every preview target.
	MaxPixels int

	Debug bool
}

// Engine runs composite requests.
//
// An Engine only holds configuration. Every call decodes its own inputs,
// owns its grids until they are encoded and keeps nothing afterwards, so a
// single Engine may serve concurrent calls.
type Engine struct {
	opts Options
}

// CompositeResult is an encoded composite.
type CompositeResult struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	PNG    []byte `json:"-"`
}

// DataURL returns the result as "data:image/png;base64,<payload>".
func (r *CompositeResult) DataURL() string {
	return imaging.PNGDataURL(r.PNG)
}

// New creates an Engine.
func New(opts Options) *Engine {
	if opts.Resampler == nil {
		opts.Resampler = imaging.LanczosResampler{}
	}
	if opts.Compression == "" {
		opts.Compression = imaging.CompressionDefault
	}
	if opts.MaxPixels <= 0 {
		opts.MaxPixels = imaging.DefaultMaxPixels
	}
	return &Engine{opts: opts}
}

// CompositeImages blends a single overlay onto base.
//
// The overlay is anchored at the top-left corner; overlay pixels beyond the
// base extent are dropped and the result keeps the base dimensions.
func (e *Engine) CompositeImages(base, overlay []byte) (*CompositeResult, error) {
	b, err := e.decode(ImageBase, 0, base)
	if err != nil {
		return nil, err
	}
	o, err := e.decode(ImageOverlay, 0, overlay)
	if err != nil {
		return nil, err
	}

	e.debugf("composite: base %dx%d, overlay %dx%d", b.Width, b.Height, o.Width, o.Height)
	compositor.CompositeLayerWith(b, o, e.opts.Rounding)
	return e.encode(b)
}

// CompositeMultipleLayers blends transport-wrapped layers onto base, in
// order.
//
// Each layer is unwrapped and decoded just before it is blended. The first
// layer that fails aborts the call with a *TransportDecodeError or
// *DecodeError naming its index; no partial result is returned.
func (e *Engine) CompositeMultipleLayers(base []byte, layers []imaging.LayerInput) (*CompositeResult, error) {
	return e.compositeLayers(base, len(layers), func(i int) ([]byte, error) {
		data, err := layers[i].Bytes()
		if err != nil {
			return nil, &TransportDecodeError{Image: ImageLayer, Index: i, Err: err}
		}
		return data, nil
	})
}

// CompositeLayerBytes is CompositeMultipleLayers for layers that are
// already raw encoded images, such as files read from disk.
func (e *Engine) CompositeLayerBytes(base []byte, layers [][]byte) (*CompositeResult, error) {
	return e.compositeLayers(base, len(layers), func(i int) ([]byte, error) {
		return layers[i], nil
	})
}

func (e *Engine) compositeLayers(base []byte, n int, load func(i int) ([]byte, error)) (*CompositeResult, error) {
	acc, err := e.decode(ImageBase, 0, base)
	if err != nil {
		return nil, err
	}
	e.debugf("composite layers: base %dx%d, %d layers", acc.Width, acc.Height, n)

	src := func(i int) (*compositor.Grid, error) {
		data, err := load(i)
		if err != nil {
			return nil, err
		}
		g, err := e.decode(ImageLayer, i, data)
		if err != nil {
			return nil, err
		}
		e.debugf("composite layers: layer %d is %dx%d", i, g.Width, g.Height)
		return g, nil
	}

	acc, err = compositor.CompositeLayersFrom(acc, n, src, e.opts.Rounding)
	if err != nil {
		// The source errors already name the layer.
		var le *compositor.LayerError
		if errors.As(err, &le) {
			return nil, le.Err
		}
		return nil, err
	}
	return e.encode(acc)
}

// GeneratePreview composites overlay onto base at exactly width x height.
//
// Base and overlay are each resampled to the target first, unless they
// already have that size. The blend then covers the whole target, which must
// not exceed the engine's pixel limit.
func (e *Engine) GeneratePreview(base, overlay []byte, width, height int) (*CompositeResult, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidDimensionsError{Width: width, Height: height}
	}
	if imaging.CheckPixels(width, height, e.opts.MaxPixels) != nil {
		return nil, &InvalidDimensionsError{Width: width, Height: height, MaxPixels: e.opts.MaxPixels}
	}

	b, err := e.decode(ImageBase, 0, base)
	if err != nil {
		return nil, err
	}
	o, err := e.decode(ImageOverlay, 0, overlay)
	if err != nil {
		return nil, err
	}

	e.debugf("preview: base %dx%d (resample=%v), overlay %dx%d (resample=%v), target %dx%d",
		b.Width, b.Height, compositor.NeedsResample(b, width, height),
		o.Width, o.Height, compositor.NeedsResample(o, width, height),
		width, height)

	out := compositor.Preview(b, o, compositor.PreviewOptions{
		Width:     width,
		Height:    height,
		Resampler: e.opts.Resampler,
		Rounding:  e.opts.Rounding,
	})
	return e.encode(out)
}

// ParseLayerValues converts loosely typed layer values, such as a decoded
// JSON array, into layer inputs. Every value must be a string.
func ParseLayerValues(values []any) ([]imaging.LayerInput, error) {
	layers := make([]imaging.LayerInput, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, &InvalidLayerTypeError{Index: i, Got: typeName(v)}
		}
		layers = append(layers, imaging.NewLayerInput(s))
	}
	return layers, nil
}

// UnwrapImage converts a transport string holding a base or overlay image
// into encoded bytes.
func UnwrapImage(image, s string) ([]byte, error) {
	data, err := imaging.NewLayerInput(s).Bytes()
	if err != nil {
		return nil, &TransportDecodeError{Image: image, Err: err}
	}
	return data, nil
}

// DecodeImage decodes a single image under the engine's pixel limit. Errors
// are *DecodeError values labelled with image.
func (e *Engine) DecodeImage(image string, data []byte) (*compositor.Grid, error) {
	return e.decode(image, 0, data)
}

// Inspect reports image metadata under the engine's pixel limit.
func (e *Engine) Inspect(data []byte) (*imaging.ImageInfo, error) {
	return imaging.InspectLimit(data, e.opts.MaxPixels)
}

func (e *Engine) decode(image string, index int, data []byte) (*compositor.Grid, error) {
	g, err := imaging.DecodeLimit(data, e.opts.MaxPixels)
	if err != nil {
		return nil, &DecodeError{Image: image, Index: index, Err: err}
	}
	return g, nil
}

func (e *Engine) encode(g *compositor.Grid) (*CompositeResult, error) {
	data, err := imaging.EncodePNG(g, e.opts.Compression)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	e.debugf("encoded %dx%d result, %d bytes", g.Width, g.Height, len(data))
	return &CompositeResult{Width: g.Width, Height: g.Height, PNG: data}, nil
}

func (e *Engine) debugf(format string, args ...interface{}) {
	if e.opts.Debug {
		log.Printf("[debug] "+format, args...)
	}
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
