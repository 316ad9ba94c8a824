package frames

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPSource reads frames from a Firebase-style REST store.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source polling <baseURL><cameraPath>.
func NewHTTPSource(baseURL, cameraPath string) *HTTPSource {
	return &HTTPSource{
		url:    strings.TrimRight(baseURL, "/") + cameraPath,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// frameDoc is the JSON shape of the camera document. The timestamp may be
// any JSON scalar, so it is captured raw.
type frameDoc struct {
	Frame     string          `json:"frame"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// Fetch returns the latest frame payload and token. A non-2xx response or
// a document without a frame means "no frame available", not an error.
func (s *HTTPSource) Fetch() (string, string, error) {
	resp, err := s.client.Get(s.url)
	if err != nil {
		return "", "", fmt.Errorf("fetch frame: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", "", nil
	}

	var doc frameDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", "", fmt.Errorf("parse frame document: %w", err)
	}
	if doc.Frame == "" {
		return "", "", nil
	}
	return doc.Frame, TokenString(doc.Timestamp), nil
}

// Close releases transport resources.
func (s *HTTPSource) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// TokenString normalizes a raw timestamp scalar into an opaque comparison
// token. Quotes are trimmed so string and numeric timestamps with the same
// text compare equal and log cleanly.
func TokenString(raw json.RawMessage) string {
	return strings.Trim(string(raw), `"`)
}
