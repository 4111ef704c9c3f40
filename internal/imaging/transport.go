package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// dataURLPrefix marks a layer value as a data URL. Anything else is taken as
// bare base64.
const dataURLPrefix = "data:image"

// pngDataURLPrefix is prepended to every encoded result.
const pngDataURLPrefix = "data:image/png;base64,"

// ErrMissingComma is returned for a data URL without a payload separator.
var ErrMissingComma = errors.New("invalid data URL format: missing comma")

// LayerKind tags the transport wrapping of a LayerInput.
type LayerKind int

const (
	// RawBase64 is a bare base64 payload.
	RawBase64 LayerKind = iota
	// DataURL is a "data:image/...;base64,<payload>" string.
	DataURL
)

func (k LayerKind) String() string {
	switch k {
	case RawBase64:
		return "raw-base64"
	case DataURL:
		return "data-url"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// LayerInput is a transport-wrapped encoded image.
//
// The kind is decided once, when the value crosses into the program, so
// later stages never sniff the string again.
type LayerInput struct {
	Kind  LayerKind
	Value string
}

// NewLayerInput classifies s by its prefix.
func NewLayerInput(s string) LayerInput {
	if strings.HasPrefix(s, dataURLPrefix) {
		return LayerInput{Kind: DataURL, Value: s}
	}
	return LayerInput{Kind: RawBase64, Value: s}
}

// Payload returns the base64 text carried by the input. For a data URL that
// is everything after the first comma.
func (in LayerInput) Payload() (string, error) {
	if in.Kind != DataURL {
		return in.Value, nil
	}
	_, payload, ok := strings.Cut(in.Value, ",")
	if !ok {
		return "", ErrMissingComma
	}
	return payload, nil
}

// Bytes unwraps the input into encoded image bytes.
func (in LayerInput) Bytes() ([]byte, error) {
	payload, err := in.Payload()
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return data, nil
}

// PNGDataURL wraps PNG bytes as "data:image/png;base64,<payload>".
func PNGDataURL(data []byte) string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(data)
}
