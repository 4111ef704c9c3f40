// Package imaging adapts encoded images and transport strings to the
// compositor's pixel grids.
//
// It covers everything at the edge of a composite request:
//   - Decode: encoded bytes (PNG, JPEG, GIF, BMP, TIFF, WebP) to a Grid
//   - EncodePNG: a Grid back to PNG bytes
//   - LayerInput: data URL or bare base64 text, classified once
//   - PNGDataURL: result wrapping as "data:image/png;base64,..."
//   - LanczosResampler, BildResampler: compositor.Resampler backends
//   - Inspect, SampleColor: metadata and pixel reports for checking results
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// Nothing here keeps state between calls. Every function can be called
// concurrently on distinct inputs.
//
// # Error Handling
//
// Functions return wrapped errors ("failed to decode image: ...") and never
// substitute defaults for input they cannot read. Callers attach which image
// or layer failed.
package imaging
