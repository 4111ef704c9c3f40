package compositor

// CompositeLayer blends overlay onto base in place with truncating
// quantization. See CompositeLayerWith.
func CompositeLayer(base, overlay *Grid) {
	CompositeLayerWith(base, overlay, Truncate)
}

// CompositeLayerWith blends overlay onto base in place, pixel by pixel.
//
// Only coordinates that exist in both grids are blended. Overlay pixels that
// fall outside the base are skipped, and base pixels the overlay does not
// cover are left untouched. No resizing or wrap-around takes place.
func CompositeLayerWith(base, overlay *Grid, mode Rounding) {
	if base.SameSize(overlay) {
		for i, o := range overlay.Pix {
			base.Pix[i] = BlendWith(base.Pix[i], o, mode)
		}
		return
	}

	w := min(base.Width, overlay.Width)
	h := min(base.Height, overlay.Height)
	for y := 0; y < h; y++ {
		brow := base.Pix[y*base.Width : y*base.Width+w]
		orow := overlay.Pix[y*overlay.Width : y*overlay.Width+w]
		for x, o := range orow {
			brow[x] = BlendWith(brow[x], o, mode)
		}
	}
}
