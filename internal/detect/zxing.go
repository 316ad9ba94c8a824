package detect

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/multi"
	qrreader "github.com/makiuchi-d/gozxing/multi/qrcode"
)

// ZXingDetector decodes QR codes using the gozxing port of ZXing.
// It reports every code present in the frame, not just the first.
type ZXingDetector struct {
	reader multi.MultipleBarcodeReader
}

// NewZXingDetector creates a multi-code QR detector.
func NewZXingDetector() *ZXingDetector {
	return &ZXingDetector{reader: qrreader.NewQRCodeMultiReader()}
}

// Detect returns all QR codes found in img. A frame with no codes
// returns (nil, nil).
func (d *ZXingDetector) Detect(img image.Image) ([]Detection, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("prepare bitmap: %w", err)
	}

	results, err := d.reader.DecodeMultiple(bmp, nil)
	if err != nil {
		if _, notFound := err.(gozxing.NotFoundException); notFound {
			return nil, nil
		}
		return nil, fmt.Errorf("decode barcodes: %w", err)
	}

	detections := make([]Detection, 0, len(results))
	for _, r := range results {
		det := Detection{
			Payload:   r.GetText(),
			Symbology: r.GetBarcodeFormat().String(),
		}
		for _, p := range r.GetResultPoints() {
			if p == nil {
				continue
			}
			det.Bounds = append(det.Bounds, image.Point{X: int(p.GetX()), Y: int(p.GetY())})
		}
		detections = append(detections, det)
	}
	return detections, nil
}
