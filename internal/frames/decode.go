package frames

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Registered formats for the transport payloads the camera produces.
	_ "image/jpeg"
	_ "image/png"
)

// DecodePayload turns a transport-encoded frame payload into a pixel
// buffer. Payloads may carry a data-URI style "<mime>," prefix, which is
// stripped before base64 decoding.
func DecodePayload(payload string) (image.Image, error) {
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
