// Package detect finds QR codes in decoded camera frames.
package detect

import "image"

// Detection is one decoded barcode found in a frame.
type Detection struct {
	// Payload is the decoded text content.
	Payload string

	// Symbology names the barcode format, e.g. "QR_CODE".
	Symbology string

	// Bounds holds the detector's result points, when available.
	Bounds []image.Point
}

// Detector finds barcodes in an image. A frame with no codes in it is
// not an error: implementations return (nil, nil).
type Detector interface {
	Detect(img image.Image) ([]Detection, error)
}
