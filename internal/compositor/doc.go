// Package compositor implements the pixel-level compositing core.
//
// Everything in this package works on Grid values: contiguous RGBA8 buffers
// with straight (non-premultiplied) alpha, where the pixel at (x, y) lives at
// index y*Width+x. Decoding, encoding and resampling are done elsewhere; the
// compositor only decides how pixels combine and when a resample is needed.
//
// # Blending
//
// Blend implements the source-over rule:
//
//	a_r = a_o + a_b*(1-a_o)
//	c_r = (c_o*a_o + c_b*a_b*(1-a_o)) / a_r
//
// with alpha values scaled to [0,1]. A fully transparent result is reported
// as (0,0,0,0). The arithmetic runs on exact integers so the quantization
// mode (Truncate or Nearest) is the only source of rounding.
//
// # Pipelines
//
//   - CompositeLayer: one overlay onto a base, clipped to the base extent
//   - CompositeLayers: ordered fold of many overlays onto a base
//   - Preview: resample base and overlay to a target size, then composite once
//
// # Thread Safety
//
// Functions hold no package state. A Grid must have a single owner while it
// is being mutated; distinct grids may be processed concurrently.
package compositor
