package detect

import (
	"image"
	"testing"

	"github.com/makiuchi-d/gozxing"
	qrwriter "github.com/makiuchi-d/gozxing/qrcode"
)

// encodeQR renders text into a QR code image.
func encodeQR(t *testing.T, text string) image.Image {
	t.Helper()
	matrix, err := qrwriter.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	if err != nil {
		t.Fatalf("encode qr: %v", err)
	}
	return matrix
}

func TestZXingDetectorRoundTrip(t *testing.T) {
	img := encodeQR(t, "https://example.com/door")

	d := NewZXingDetector()
	detections, err := d.Detect(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detections) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(detections))
	}
	if detections[0].Payload != "https://example.com/door" {
		t.Errorf("payload: got %q", detections[0].Payload)
	}
	if detections[0].Symbology != "QR_CODE" {
		t.Errorf("symbology: got %q", detections[0].Symbology)
	}
}

func TestZXingDetectorBlankFrame(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))

	d := NewZXingDetector()
	detections, err := d.Detect(img)
	if err != nil {
		t.Fatalf("blank frame should not be an error, got: %v", err)
	}
	if len(detections) != 0 {
		t.Errorf("expected no detections, got %d", len(detections))
	}
}
