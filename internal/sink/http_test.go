package sink

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPPublisherPost(t *testing.T) {
	var gotPath string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(200)
	}))
	defer ts.Close()

	p := NewHTTPPublisher(ts.URL, "/qr_detections")
	ev := Event{
		Payload:   "https://example.com",
		Symbology: "QR_CODE",
		IsURL:     true,
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Status:    StatusOpened,
	}

	if err := p.Publish(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/qr_detections" {
		t.Errorf("path: got %q", gotPath)
	}

	var body Payload
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatalf("unmarshal posted body: %v", err)
	}
	if body.Data != "https://example.com" || body.Status != "opened" || !body.IsURL {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestHTTPPublisherNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	p := NewHTTPPublisher(ts.URL, "/qr_detections")
	if err := p.Publish(Event{}); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestHTTPPublisherTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	p := NewHTTPPublisher(url, "/qr_detections")
	if err := p.Publish(Event{}); err == nil {
		t.Error("expected transport error")
	}
}
