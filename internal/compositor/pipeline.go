package compositor

import "fmt"

// LayerSource produces the overlay at position i of an ordered layer list.
// It is called exactly once per index, in increasing order.
type LayerSource func(i int) (*Grid, error)

// LayerError reports the layer index at which a LayerSource failed.
type LayerError struct {
	Index int
	Err   error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("layer %d: %v", e.Index, e.Err)
}

func (e *LayerError) Unwrap() error { return e.Err }

// CompositeLayers folds overlays onto base in slice order and returns base.
//
// Each overlay is blended onto the accumulated result of all previous
// blends, so order matters whenever overlapping layers are translucent.
// An empty overlay list returns base unchanged.
func CompositeLayers(base *Grid, overlays []*Grid, mode Rounding) *Grid {
	for _, o := range overlays {
		CompositeLayerWith(base, o, mode)
	}
	return base
}

// CompositeLayersFrom is CompositeLayers for overlays that are produced one
// at a time, typically decoded on demand. Only one overlay is held at once.
//
// The first error from src stops the fold. The partially blended base must
// then be discarded; the returned error is a *LayerError carrying the index.
func CompositeLayersFrom(base *Grid, n int, src LayerSource, mode Rounding) (*Grid, error) {
	for i := 0; i < n; i++ {
		overlay, err := src(i)
		if err != nil {
			return nil, &LayerError{Index: i, Err: err}
		}
		CompositeLayerWith(base, overlay, mode)
	}
	return base, nil
}
