package imaging

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testPolicy() Policy {
	return Policy{
		MaxBytes:       5 * 1024 * 1024,
		AllowedFormats: []string{"jpeg", "png", "webp"},
		MinWidth:       200,
		MinHeight:      200,
		MaxWidth:       4000,
		MaxHeight:      4000,
	}
}

func TestDecodeAcceptsValidImage(t *testing.T) {
	data := encodePNG(t, 640, 480)

	desc, err := NewDecoder().Decode(data, testPolicy())
	if err != nil {
		t.Fatal(err)
	}
	if desc.Width != 640 || desc.Height != 480 {
		t.Fatalf("dimensions = %dx%d", desc.Width, desc.Height)
	}
	if desc.Format != "png" {
		t.Fatalf("format = %s", desc.Format)
	}
	if desc.Size != len(data) {
		t.Fatalf("size = %d, want %d", desc.Size, len(data))
	}
}

func TestDecodeOversizePayload(t *testing.T) {
	p := testPolicy()
	p.MaxBytes = 10

	_, err := NewDecoder().Decode(encodePNG(t, 640, 480), p)
	assertKind(t, err, FailureOversize)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := NewDecoder().Decode([]byte("definitely not an image"), testPolicy())
	assertKind(t, err, FailureUnknownFormat)
}

func TestDecodeCorruptEncoding(t *testing.T) {
	// A real PNG signature and header, truncated mid-structure.
	data := encodePNG(t, 640, 480)[:20]
	_, err := NewDecoder().Decode(data, testPolicy())
	assertKind(t, err, FailureCorruptEncoding)
}

func TestDecodeDisallowedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := gif.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 480)), nil); err != nil {
		t.Fatal(err)
	}

	_, err := NewDecoder().Decode(buf.Bytes(), testPolicy())
	assertKind(t, err, FailureDisallowedFormat)
}

func TestDecodeDimensionBounds(t *testing.T) {
	p := testPolicy()

	_, err := NewDecoder().Decode(encodePNG(t, 100, 480), p)
	assertKind(t, err, FailureTooSmall)

	_, err = NewDecoder().Decode(encodePNG(t, 640, 4100), p)
	assertKind(t, err, FailureTooLarge)
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 480)), nil); err != nil {
		t.Fatal(err)
	}

	desc, err := NewDecoder().Decode(buf.Bytes(), testPolicy())
	if err != nil {
		t.Fatal(err)
	}
	if desc.Format != "jpeg" {
		t.Fatalf("format = %s", desc.Format)
	}
}

func assertKind(t *testing.T, err error, want FailureKind) {
	t.Helper()
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if de.Kind != want {
		t.Fatalf("kind = %s, want %s", de.Kind, want)
	}
}
