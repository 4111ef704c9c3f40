package imaging

import (
	"testing"

	"github.com/nami2111/nft-studio/internal/compositor"
)

func TestResamplers_ExactSize(t *testing.T) {
	src := createGrid(40, 30, compositor.Pixel{R: 200, G: 100, B: 50, A: 255})

	resamplers := map[string]compositor.Resampler{
		ResamplerImaging: LanczosResampler{},
		ResamplerBild:    BildResampler{},
	}

	sizes := []struct{ w, h int }{
		{10, 10},
		{80, 60},
		{1, 1},
		{40, 7},
	}

	for name, r := range resamplers {
		for _, s := range sizes {
			got := r.Resample(src, s.w, s.h)
			if got.Width != s.w || got.Height != s.h {
				t.Errorf("%s: got %dx%d, want %dx%d", name, got.Width, got.Height, s.w, s.h)
			}
			if len(got.Pix) != s.w*s.h {
				t.Errorf("%s: len(Pix) %d, want %d", name, len(got.Pix), s.w*s.h)
			}
		}
	}
}

func TestResamplers_SolidColorPreserved(t *testing.T) {
	want := compositor.Pixel{R: 200, G: 100, B: 50, A: 255}
	src := createGrid(16, 16, want)

	for name, r := range map[string]compositor.Resampler{
		ResamplerImaging: LanczosResampler{},
		ResamplerBild:    BildResampler{},
	} {
		got := r.Resample(src, 5, 5).At(2, 2)
		if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 ||
			absDiff(got.B, want.B) > 1 || absDiff(got.A, want.A) > 1 {
			t.Errorf("%s: center pixel got %v, want about %v", name, got, want)
		}
	}
}

func TestResamplers_DoNotModifySource(t *testing.T) {
	src := createGrid(4, 4, compositor.Pixel{R: 1, G: 2, B: 3, A: 4})
	LanczosResampler{}.Resample(src, 8, 8)
	BildResampler{}.Resample(src, 2, 2)

	for i, p := range src.Pix {
		if p != (compositor.Pixel{R: 1, G: 2, B: 3, A: 4}) {
			t.Fatalf("source pixel %d changed to %v", i, p)
		}
	}
}

func TestResamplers_EmptySource(t *testing.T) {
	empty := compositor.NewGrid(0, 0)
	for _, r := range []compositor.Resampler{LanczosResampler{}, BildResampler{}} {
		got := r.Resample(empty, 3, 2)
		if got.Width != 3 || got.Height != 2 {
			t.Errorf("%T: got %dx%d, want 3x2", r, got.Width, got.Height)
		}
	}
}

func TestNewResampler(t *testing.T) {
	tests := []struct {
		name    string
		want    compositor.Resampler
		wantErr bool
	}{
		{"", LanczosResampler{}, false},
		{"imaging", LanczosResampler{}, false},
		{"bild", BildResampler{}, false},
		{"nearest", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewResampler(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewResampler(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewResampler(%q): got %T, want %T", tt.name, got, tt.want)
			}
		})
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
