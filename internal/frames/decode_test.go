package frames

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodeTestPNG returns a base64-encoded 2x2 PNG.
func encodeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodePayload(t *testing.T) {
	img, err := DecodePayload(encodeTestPNG(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("unexpected bounds: %v", img.Bounds())
	}
}

func TestDecodePayloadDataURIPrefix(t *testing.T) {
	payload := "data:image/png;base64," + encodeTestPNG(t)

	img, err := DecodePayload(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img == nil {
		t.Fatal("expected non-nil image")
	}
}

func TestDecodePayloadInvalidBase64(t *testing.T) {
	_, err := DecodePayload("not valid base64!!!")
	if err == nil {
		t.Error("expected base64 error")
	}
}

func TestDecodePayloadNotAnImage(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("plain text, not pixels"))

	_, err := DecodePayload(payload)
	if err == nil {
		t.Error("expected image decode error")
	}
}

func TestDecodePayloadEmpty(t *testing.T) {
	_, err := DecodePayload("")
	if err == nil {
		t.Error("expected error for empty payload")
	}
}
