// Package imaging decodes and classifies submitted product images against a
// size, format and dimension policy. Decoding only reads image headers, so a
// corrupt or hostile payload never gets fully decoded here.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Policy is the acceptance criteria for one attachment.
type Policy struct {
	MaxBytes       int
	AllowedFormats []string
	MinWidth       int
	MinHeight      int
	MaxWidth       int
	MaxHeight      int
}

// Descriptor describes a successfully decoded attachment. It is carried
// through validation because the upload step needs it afterwards.
type Descriptor struct {
	Size   int
	Width  int
	Height int
	Format string
}

// FailureKind classifies why an attachment was rejected.
type FailureKind int

const (
	FailureOversize FailureKind = iota
	FailureCorruptEncoding
	FailureUnknownFormat
	FailureDisallowedFormat
	FailureTooSmall
	FailureTooLarge
	FailureUndetectableDimensions
)

func (k FailureKind) String() string {
	switch k {
	case FailureOversize:
		return "oversize"
	case FailureCorruptEncoding:
		return "corrupt_encoding"
	case FailureUnknownFormat:
		return "unknown_format"
	case FailureDisallowedFormat:
		return "disallowed_format"
	case FailureTooSmall:
		return "too_small"
	case FailureTooLarge:
		return "too_large"
	case FailureUndetectableDimensions:
		return "undetectable_dimensions"
	default:
		return "unknown"
	}
}

// DecodeError is a classified decode rejection.
type DecodeError struct {
	Kind FailureKind
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("image decode failed: %s: %v", e.Kind, e.Err)
	}
	return "image decode failed: " + e.Kind.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decoder decodes raw encoded image bytes against a policy. It is stateless
// and safe for concurrent use.
type Decoder struct{}

func NewDecoder() *Decoder { return &Decoder{} }

// Decode returns a descriptor for data, or a *DecodeError classifying the
// rejection. The checks run in policy order: byte size, decodability, format,
// dimensions.
func (d *Decoder) Decode(data []byte, p Policy) (*Descriptor, error) {
	if p.MaxBytes > 0 && len(data) > p.MaxBytes {
		return nil, &DecodeError{Kind: FailureOversize}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, &DecodeError{Kind: FailureUnknownFormat, Err: err}
		}
		return nil, &DecodeError{Kind: FailureCorruptEncoding, Err: err}
	}

	if len(p.AllowedFormats) > 0 && !formatAllowed(p.AllowedFormats, format) {
		return nil, &DecodeError{Kind: FailureDisallowedFormat}
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &DecodeError{Kind: FailureUndetectableDimensions}
	}
	if (p.MinWidth > 0 && cfg.Width < p.MinWidth) || (p.MinHeight > 0 && cfg.Height < p.MinHeight) {
		return nil, &DecodeError{Kind: FailureTooSmall}
	}
	if (p.MaxWidth > 0 && cfg.Width > p.MaxWidth) || (p.MaxHeight > 0 && cfg.Height > p.MaxHeight) {
		return nil, &DecodeError{Kind: FailureTooLarge}
	}

	return &Descriptor{
		Size:   len(data),
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

func formatAllowed(allowed []string, format string) bool {
	for _, f := range allowed {
		if f == format {
			return true
		}
	}
	return false
}
