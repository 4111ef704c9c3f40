package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestNewLayerInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want LayerKind
	}{
		{"png data url", "data:image/png;base64,AAAA", DataURL},
		{"webp data url", "data:image/webp;base64,AAAA", DataURL},
		{"bare base64", "iVBORw0KGgo=", RawBase64},
		{"other data url", "data:text/plain;base64,AAAA", RawBase64},
		{"empty", "", RawBase64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLayerInput(tt.in)
			if got.Kind != tt.want {
				t.Errorf("Kind: got %v, want %v", got.Kind, tt.want)
			}
			if got.Value != tt.in {
				t.Errorf("Value: got %q, want %q", got.Value, tt.in)
			}
		})
	}
}

func TestLayerInput_Payload(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"data url", "data:image/png;base64,QUJD", "QUJD", nil},
		{"splits at first comma", "data:image/png;base64,QUJD,RUZH", "QUJD,RUZH", nil},
		{"raw", "QUJD", "QUJD", nil},
		{"raw with comma", "QU,JD", "QU,JD", nil},
		{"missing comma", "data:image/png;base64QUJD", "", ErrMissingComma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLayerInput(tt.in).Payload()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: got %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("payload: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayerInput_Bytes(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0, 1, 2}
	encoded := base64.StdEncoding.EncodeToString(raw)

	for _, in := range []string{encoded, "data:image/png;base64," + encoded} {
		got, err := NewLayerInput(in).Bytes()
		if err != nil {
			t.Fatalf("Bytes(%q) failed: %v", in, err)
		}
		if !bytes.Equal(got, raw) {
			t.Errorf("Bytes(%q): got %v, want %v", in, got, raw)
		}
	}
}

func TestLayerInput_BytesInvalidBase64(t *testing.T) {
	tests := []string{
		"not base64!!",
		"data:image/png;base64,@@@@",
		"QUJ",
		// Everything after the first comma is payload, so a trailing
		// field makes the base64 invalid.
		"data:image/png;base64,QUJD,RUZH",
	}

	for _, in := range tests {
		_, err := NewLayerInput(in).Bytes()
		if err == nil {
			t.Errorf("Bytes(%q) should fail", in)
			continue
		}
		if !strings.Contains(err.Error(), "failed to decode base64") {
			t.Errorf("Bytes(%q) error: got %q", in, err)
		}
	}
}

func TestPNGDataURL(t *testing.T) {
	got := PNGDataURL([]byte("ABC"))
	if got != "data:image/png;base64,QUJD" {
		t.Errorf("got %q", got)
	}

	// A result URL parses back as a layer.
	in := NewLayerInput(got)
	if in.Kind != DataURL {
		t.Fatalf("Kind: got %v, want data-url", in.Kind)
	}
	b, err := in.Bytes()
	if err != nil || string(b) != "ABC" {
		t.Errorf("Bytes: got %q, %v", b, err)
	}
}

func TestLayerKind_String(t *testing.T) {
	if RawBase64.String() != "raw-base64" || DataURL.String() != "data-url" {
		t.Errorf("unexpected names: %s, %s", RawBase64, DataURL)
	}
}
