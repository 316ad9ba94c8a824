package sink

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPPublisher POSTs detection events to the remote store's results
// endpoint.
type HTTPPublisher struct {
	url    string
	client *http.Client
}

// NewHTTPPublisher creates a publisher targeting baseURL+resultsPath.
func NewHTTPPublisher(baseURL, resultsPath string) *HTTPPublisher {
	return &HTTPPublisher{
		url: strings.TrimRight(baseURL, "/") + resultsPath,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Publish POSTs the event as JSON. Non-2xx responses are errors.
func (p *HTTPPublisher) Publish(ev Event) error {
	body, err := FormatPayload(ev)
	if err != nil {
		return err
	}

	resp, err := p.client.Post(p.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post detection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post detection: unexpected status %s", resp.Status)
	}
	return nil
}

// Close releases idle connections.
func (p *HTTPPublisher) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
