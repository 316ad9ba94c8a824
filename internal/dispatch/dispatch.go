// Package dispatch acts on accepted detections: opening URLs and
// fanning events out to the configured sinks.
package dispatch

import (
	"time"

	"github.com/sweeney/qr-monitor/internal/detect"
	"github.com/sweeney/qr-monitor/internal/sink"
)

// Dispatcher turns accepted detections into actions.
type Dispatcher struct {
	opener   Opener
	sinks    []sink.Publisher
	openURLs bool
}

// New creates a dispatcher. With openURLs false, URL payloads are
// reported but never opened.
func New(opener Opener, sinks []sink.Publisher, openURLs bool) *Dispatcher {
	return &Dispatcher{
		opener:   opener,
		sinks:    sinks,
		openURLs: openURLs,
	}
}

// Outcome records what happened to a single dispatched detection.
type Outcome struct {
	// Status is the event status that was published.
	Status string

	// OpenIssued reports that an open attempt was made. It stays true
	// even when the attempt itself failed.
	OpenIssued bool

	// OpenErr is the error from the open attempt, if any.
	OpenErr error

	// Published counts sinks that accepted the event.
	Published int

	// PublishErrs collects per-sink publish failures.
	PublishErrs []error
}

// Dispatch opens the payload when it is an actionable URL and opening
// is enabled, then publishes the event to every sink. The status
// reflects whether an open was attempted, not whether it succeeded.
func (d *Dispatcher) Dispatch(det detect.Detection, isURL bool, now time.Time) Outcome {
	var out Outcome

	out.Status = sink.StatusDetected
	if isURL && d.openURLs {
		out.Status = sink.StatusOpened
		out.OpenIssued = true
		out.OpenErr = d.opener.Open(det.Payload)
	}

	ev := sink.Event{
		Payload:   det.Payload,
		Symbology: det.Symbology,
		IsURL:     isURL,
		Timestamp: now,
		Status:    out.Status,
	}

	for _, s := range d.sinks {
		if err := s.Publish(ev); err != nil {
			out.PublishErrs = append(out.PublishErrs, err)
			continue
		}
		out.Published++
	}

	return out
}
