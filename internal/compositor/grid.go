package compositor

import (
	"image"
)

// Grid is a rectangular RGBA8 pixel buffer.
//
// Pixels are stored row-major in a single slice; the pixel at (x, y) is
// Pix[y*Width+x]. len(Pix) is always Width*Height.
type Grid struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewGrid allocates a fully transparent grid. Negative dimensions are
// treated as zero.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the pixel at (x, y), or Transparent outside the grid.
func (g *Grid) At(x, y int) Pixel {
	if !g.In(x, y) {
		return Transparent
	}
	return g.Pix[y*g.Width+x]
}

// Set writes the pixel at (x, y). Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, p Pixel) {
	if !g.In(x, y) {
		return
	}
	g.Pix[y*g.Width+x] = p
}

// SameSize reports whether g and other have identical dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return g.Width == other.Width && g.Height == other.Height
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, Pix: make([]Pixel, len(g.Pix))}
	copy(out.Pix, g.Pix)
	return out
}

// FromNRGBA copies a non-premultiplied image into a new grid. The image's
// bounds are translated so its top-left pixel becomes (0, 0).
func FromNRGBA(img *image.NRGBA) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		row := g.Pix[y*g.Width : (y+1)*g.Width]
		for x := range row {
			s := img.Pix[i : i+4 : i+4]
			row[x] = Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
			i += 4
		}
	}
	return g
}

// NRGBA copies the grid into a new *image.NRGBA anchored at (0, 0).
func (g *Grid) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	i := 0
	for _, p := range g.Pix {
		img.Pix[i+0] = p.R
		img.Pix[i+1] = p.G
		img.Pix[i+2] = p.B
		img.Pix[i+3] = p.A
		i += 4
	}
	return img
}
