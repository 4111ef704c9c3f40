package compositor

// Resampler scales a grid to exact target dimensions.
//
// Implementations must return a new grid of exactly width x height and must
// not modify src.
type Resampler interface {
	Resample(src *Grid, width, height int) *Grid
}

// ResamplerFunc adapts a function to the Resampler interface.
type ResamplerFunc func(src *Grid, width, height int) *Grid

// Resample calls f(src, width, height).
func (f ResamplerFunc) Resample(src *Grid, width, height int) *Grid {
	return f(src, width, height)
}

// PreviewOptions configures Preview.
type PreviewOptions struct {
	Width     int
	Height    int
	Resampler Resampler
	Rounding  Rounding
}

// Preview composites overlay onto base at exactly opts.Width x opts.Height.
//
// Each input whose size differs from the target is resampled first; an
// input that already matches is used as is. Both grids therefore share the
// target size before the single CompositeLayer pass, so no overlay pixel is
// clipped. The returned grid may be base itself when no resample was needed.
//
// Callers must validate that the target dimensions are positive.
func Preview(base, overlay *Grid, opts PreviewOptions) *Grid {
	base = fit(base, opts)
	overlay = fit(overlay, opts)
	CompositeLayerWith(base, overlay, opts.Rounding)
	return base
}

// NeedsResample reports whether g differs from the target size.
func NeedsResample(g *Grid, width, height int) bool {
	return g.Width != width || g.Height != height
}

func fit(g *Grid, opts PreviewOptions) *Grid {
	if !NeedsResample(g, opts.Width, opts.Height) {
		return g
	}
	return opts.Resampler.Resample(g, opts.Width, opts.Height)
}
