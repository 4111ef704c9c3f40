// Package engine exposes the composite entry points.
//
// Three operations are provided, each a complete, stateless transformation
// from encoded input bytes to an encoded PNG result:
//   - CompositeImages: one overlay onto a base
//   - CompositeMultipleLayers: an ordered list of transport-wrapped layers
//   - GeneratePreview: base and overlay resampled to a target size, then blended
//
// Results are returned as CompositeResult; DataURL gives the
// "data:image/png;base64,..." form handed to browser and MCP clients.
//
// # Error Handling
//
// Every failure aborts the whole call. Errors are typed so callers can tell
// them apart with errors.As:
//   - *DecodeError: bytes not recognized as an image (names the image or layer)
//   - *TransportDecodeError: invalid base64 or a malformed data URL
//   - *EncodeError: the result could not be encoded
//   - *InvalidLayerTypeError: a layer value was not a string
//   - *InvalidDimensionsError: a preview target was not positive or too large
//
// # Size Limit
//
// Options.MaxPixels caps every image the engine touches. Inputs are checked
// against their header before decoding, and a *DecodeError for an oversized
// input wraps imaging.ErrImageTooLarge. Preview targets over the limit are
// rejected before any input is decoded.
package engine
