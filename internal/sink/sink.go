// Package sink delivers detection events to downstream consumers.
package sink

import (
	"encoding/json"
	"fmt"
	"time"
)

// Detection event statuses.
const (
	// StatusOpened records that an open attempt was issued for a URL
	// payload. It reflects intent, not whether the browser succeeded.
	StatusOpened = "opened"

	// StatusDetected records a payload that was reported without an
	// open attempt.
	StatusDetected = "detected"
)

// Event is one accepted detection, ready to publish.
type Event struct {
	Payload   string
	Symbology string
	IsURL     bool
	Timestamp time.Time
	Status    string
}

// Publisher delivers detection events.
type Publisher interface {
	Publish(ev Event) error
	Close() error
}

// SystemPublisher delivers daemon lifecycle events. Publishers that do
// not support them simply do not implement this interface.
type SystemPublisher interface {
	PublishSystem(ev SystemEvent) error
}

// ConnectionStatus is implemented by publishers with a live link.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent is a daemon lifecycle notification.
type SystemEvent struct {
	Timestamp time.Time

	// Event names the lifecycle transition, e.g. "STARTUP".
	Event string

	// Reason carries extra context, e.g. the shutdown trigger.
	Reason string

	// RawPayload, when set, is published verbatim instead of the
	// formatted system payload.
	RawPayload []byte

	// Retained marks the event for broker retention.
	Retained bool
}

// timestampLayout is the wall-clock format consumers expect. Events are
// stamped in local time.
const timestampLayout = "2006-01-02 15:04:05"

// Payload is the wire format for a detection event.
type Payload struct {
	Data      string `json:"data"`
	Type      string `json:"type"`
	IsURL     bool   `json:"is_url"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// FormatPayload serializes a detection event.
func FormatPayload(ev Event) ([]byte, error) {
	p := Payload{
		Data:      ev.Payload,
		Type:      ev.Symbology,
		IsURL:     ev.IsURL,
		Timestamp: ev.Timestamp.Format(timestampLayout),
		Status:    ev.Status,
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal detection payload: %w", err)
	}
	return data, nil
}

// SystemPayload is the wire format for a lifecycle event.
type SystemPayload struct {
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"`
}

// FormatSystemPayload serializes a lifecycle event. When RawPayload is
// set it is passed through untouched.
func FormatSystemPayload(ev SystemEvent) ([]byte, error) {
	if ev.RawPayload != nil {
		return ev.RawPayload, nil
	}

	p := SystemPayload{
		Event:     ev.Event,
		Reason:    ev.Reason,
		Timestamp: ev.Timestamp.Format(timestampLayout),
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal system payload: %w", err)
	}
	return data, nil
}
