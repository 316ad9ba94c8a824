package sink

import (
	"errors"
	"testing"
	"time"
)

func TestFakePublisherRecordsEvents(t *testing.T) {
	f := NewFakePublisher()

	ev := Event{
		Payload:   "https://example.com",
		Symbology: "QR_CODE",
		IsURL:     true,
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    StatusOpened,
	}

	if err := f.Publish(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(f.Events))
	}
	if f.Events[0].Payload != "https://example.com" {
		t.Errorf("unexpected event payload: %q", f.Events[0].Payload)
	}
	if len(f.Payloads) != 1 {
		t.Errorf("expected 1 payload, got %d", len(f.Payloads))
	}
}

func TestFakePublisherError(t *testing.T) {
	f := NewFakePublisher()
	f.PublishError = errors.New("broker down")

	if err := f.Publish(Event{}); err == nil {
		t.Error("expected error to be returned")
	}
	if len(f.Events) != 0 {
		t.Error("failed publish should not record an event")
	}
}

func TestFakePublisherSystemEvents(t *testing.T) {
	f := NewFakePublisher()

	ev := SystemEvent{
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Event:     "SHUTDOWN",
		Reason:    "SIGINT",
		Retained:  true,
	}

	if err := f.PublishSystem(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.SystemEvents) != 1 {
		t.Fatalf("expected 1 system event, got %d", len(f.SystemEvents))
	}
	if !f.SystemEvents[0].Retained {
		t.Error("retained flag should be recorded")
	}
}

func TestFakePublisherReset(t *testing.T) {
	f := NewFakePublisher()
	f.Publish(Event{Payload: "x"})
	f.PublishSystem(SystemEvent{Event: "STARTUP"})
	f.Closed = true
	f.Connected = true

	f.Reset()

	if len(f.Events) != 0 || len(f.SystemEvents) != 0 || f.Closed || f.Connected {
		t.Error("reset should clear all recorded state")
	}
}
