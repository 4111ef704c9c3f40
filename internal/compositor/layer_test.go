package compositor

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// solidGrid returns a width x height grid filled with p.
func solidGrid(t *testing.T, width, height int, p Pixel) *Grid {
	t.Helper()
	g := NewGrid(width, height)
	for i := range g.Pix {
		g.Pix[i] = p
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(3, 2)
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", g.Width, g.Height)
	}
	if len(g.Pix) != 6 {
		t.Fatalf("len(Pix): got %d, want 6", len(g.Pix))
	}

	empty := NewGrid(-1, 4)
	if empty.Width != 0 || len(empty.Pix) != 0 {
		t.Errorf("negative width should yield empty grid, got %dx%d", empty.Width, empty.Height)
	}
}

func TestGrid_AtSet(t *testing.T) {
	g := NewGrid(4, 3)
	p := Pixel{1, 2, 3, 4}
	g.Set(2, 1, p)

	if got := g.Pix[1*4+2]; got != p {
		t.Errorf("Pix[y*w+x]: got %v, want %v", got, p)
	}
	if got := g.At(2, 1); got != p {
		t.Errorf("At(2,1): got %v, want %v", got, p)
	}
	if got := g.At(4, 0); got != Transparent {
		t.Errorf("At outside: got %v, want transparent", got)
	}

	// Out-of-range writes are ignored
	g.Set(-1, 0, p)
	g.Set(0, 3, p)
}

func TestGrid_NRGBARoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(10, 20, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(12, 21, color.NRGBA{1, 2, 3, 4})

	g := FromNRGBA(img)
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", g.Width, g.Height)
	}
	if got := g.At(0, 0); got != (Pixel{255, 0, 0, 255}) {
		t.Errorf("At(0,0): got %v", got)
	}
	if got := g.At(2, 1); got != (Pixel{1, 2, 3, 4}) {
		t.Errorf("At(2,1): got %v", got)
	}

	out := g.NRGBA()
	if out.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds: got %v", out.Bounds())
	}
	if got := out.NRGBAAt(2, 1); got != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("NRGBAAt(2,1): got %v", got)
	}
}

func TestGrid_Clone(t *testing.T) {
	g := solidGrid(t, 2, 2, Pixel{9, 9, 9, 9})
	c := g.Clone()
	c.Set(0, 0, Pixel{})
	if g.At(0, 0) != (Pixel{9, 9, 9, 9}) {
		t.Error("Clone shares its pixel buffer with the original")
	}
}

func TestCompositeLayer_Scenario(t *testing.T) {
	base := NewGrid(2, 1)
	base.Pix[0] = Pixel{255, 0, 0, 255}
	base.Pix[1] = Pixel{0, 255, 0, 255}

	overlay := NewGrid(2, 1)
	overlay.Pix[0] = Pixel{0, 0, 255, 128}
	overlay.Pix[1] = Pixel{0, 0, 0, 0}

	CompositeLayer(base, overlay)

	// Truncating quantization: red is 127.0 and blue 128.0 before the cast.
	if got, want := base.Pix[0], (Pixel{127, 0, 128, 255}); got != want {
		t.Errorf("pixel 0: got %v, want %v", got, want)
	}
	if got, want := base.Pix[1], (Pixel{0, 255, 0, 255}); got != want {
		t.Errorf("pixel 1: got %v, want %v", got, want)
	}
}

func TestCompositeLayer_OverlayLargerThanBase(t *testing.T) {
	base := solidGrid(t, 2, 2, Pixel{10, 20, 30, 255})
	overlay := solidGrid(t, 4, 3, Pixel{200, 200, 200, 255})
	// Pixels outside the base are distinct so a wrap-around would show.
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if x >= 2 || y >= 2 {
				overlay.Set(x, y, Pixel{0, 0, 0, 255})
			}
		}
	}

	CompositeLayer(base, overlay)

	if base.Width != 2 || base.Height != 2 {
		t.Fatalf("base resized to %dx%d", base.Width, base.Height)
	}
	for i, p := range base.Pix {
		if p != (Pixel{200, 200, 200, 255}) {
			t.Errorf("pixel %d: got %v, want overlay color", i, p)
		}
	}
}

func TestCompositeLayer_OverlaySmallerThanBase(t *testing.T) {
	base := solidGrid(t, 3, 3, Pixel{10, 20, 30, 255})
	overlay := solidGrid(t, 2, 1, Pixel{0, 0, 255, 255})

	CompositeLayer(base, overlay)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Pixel{10, 20, 30, 255}
			if x < 2 && y < 1 {
				want = Pixel{0, 0, 255, 255}
			}
			if got := base.At(x, y); got != want {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeLayers_Empty(t *testing.T) {
	base := solidGrid(t, 2, 2, Pixel{1, 2, 3, 4})
	want := base.Clone()

	got := CompositeLayers(base, nil, Truncate)
	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Errorf("pixel %d: got %v, want %v", i, got.Pix[i], want.Pix[i])
		}
	}
}

func TestCompositeLayers_OrderMatters(t *testing.T) {
	red := solidGrid(t, 1, 1, Pixel{255, 0, 0, 128})
	blue := solidGrid(t, 1, 1, Pixel{0, 0, 255, 128})

	rb := CompositeLayers(solidGrid(t, 1, 1, Pixel{255, 255, 255, 255}), []*Grid{red, blue}, Truncate)
	br := CompositeLayers(solidGrid(t, 1, 1, Pixel{255, 255, 255, 255}), []*Grid{blue, red}, Truncate)

	if rb.Pix[0] == br.Pix[0] {
		t.Fatalf("[red, blue] and [blue, red] both gave %v", rb.Pix[0])
	}
	// The last layer dominates its own channel.
	if rb.Pix[0].B <= rb.Pix[0].R {
		t.Errorf("[red, blue]: blue should dominate, got %v", rb.Pix[0])
	}
	if br.Pix[0].R <= br.Pix[0].B {
		t.Errorf("[blue, red]: red should dominate, got %v", br.Pix[0])
	}
}

func TestCompositeLayers_Accumulates(t *testing.T) {
	base := solidGrid(t, 1, 1, Pixel{0, 0, 0, 0})
	half := solidGrid(t, 1, 1, Pixel{255, 255, 255, 128})

	// Blending onto the accumulated result raises alpha each time.
	got := CompositeLayers(base, []*Grid{half, half}, Truncate)
	if got.Pix[0].A <= 128 {
		t.Errorf("alpha after two layers: got %d, want > 128", got.Pix[0].A)
	}
}

func TestCompositeLayersFrom_AbortsWithIndex(t *testing.T) {
	base := solidGrid(t, 1, 1, Pixel{0, 0, 0, 255})
	boom := errors.New("boom")
	calls := 0

	src := func(i int) (*Grid, error) {
		calls++
		if i == 1 {
			return nil, boom
		}
		return solidGrid(t, 1, 1, Pixel{255, 255, 255, 255}), nil
	}

	got, err := CompositeLayersFrom(base, 3, src, Truncate)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != nil {
		t.Error("no grid should be returned on failure")
	}

	var le *LayerError
	if !errors.As(err, &le) {
		t.Fatalf("error type: got %T, want *LayerError", err)
	}
	if le.Index != 1 {
		t.Errorf("Index: got %d, want 1", le.Index)
	}
	if !errors.Is(err, boom) {
		t.Error("LayerError should unwrap to the source error")
	}
	if calls != 2 {
		t.Errorf("source calls: got %d, want 2", calls)
	}
}
