package compositor

import "fmt"

// Pixel is a single RGBA8 value with straight alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Transparent is the canonical fully transparent pixel.
var Transparent = Pixel{}

// Rounding selects how blended channel values are quantized back to 8 bits.
type Rounding int

const (
	// Truncate drops the fractional part of each blended value.
	Truncate Rounding = iota
	// Nearest rounds each blended value to the nearest integer, halves up.
	Nearest
)

// String returns the configuration name of the rounding mode.
func (r Rounding) String() string {
	switch r {
	case Truncate:
		return "truncate"
	case Nearest:
		return "nearest"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding converts a configuration name into a Rounding mode.
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "", "truncate":
		return Truncate, nil
	case "nearest":
		return Nearest, nil
	default:
		return Truncate, fmt.Errorf("unknown rounding mode: %s", s)
	}
}

// Blend paints overlay over base using source-over compositing and
// truncating quantization.
func Blend(base, overlay Pixel) Pixel {
	return BlendWith(base, overlay, Truncate)
}

// BlendWith paints overlay over base using source-over compositing.
//
// With alphas scaled to [0,1] the result is
//
//	a_r = a_o + a_b*(1-a_o)
//	c   = (c_o*a_o + c_b*a_b*(1-a_o)) / a_r
//
// Both sides are multiplied by 255² so the division below is exact integer
// arithmetic:
//
//	den = 255*a_o + a_b*(255-a_o)            (= a_r * 255²)
//	num = c_o*a_o*255 + c_b*a_b*(255-a_o)
//	c   = num / den,  a = den / 255
//
// num/den never exceeds 255 because it is a convex combination of c_o and c_b.
func BlendWith(base, overlay Pixel, mode Rounding) Pixel {
	oa := uint32(overlay.A)
	ba := uint32(base.A)

	den := 255*oa + ba*(255-oa)
	if den == 0 {
		return Transparent
	}

	wo := oa * 255
	wb := ba * (255 - oa)
	channel := func(o, b uint8) uint8 {
		num := uint32(o)*wo + uint32(b)*wb
		return quantize(num, den, mode)
	}

	return Pixel{
		R: channel(overlay.R, base.R),
		G: channel(overlay.G, base.G),
		B: channel(overlay.B, base.B),
		A: quantize(den, 255, mode),
	}
}

func quantize(num, den uint32, mode Rounding) uint8 {
	var v uint32
	if mode == Nearest {
		v = (2*num + den) / (2 * den)
	} else {
		v = num / den
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
