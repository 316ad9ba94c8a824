package stats

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string          `json:"event,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	LastToken     string          `json:"last_token"`
	WindowSize    int             `json:"window_size"`
	UptimeSeconds int64           `json:"uptime_seconds"`
	StartTime     string          `json:"start_time"`
	Timestamp     string          `json:"timestamp"`
	MQTT          MQTTStatus      `json:"mqtt"`
	Counts        CountsJSON      `json:"counts"`
	Recent        []DetectionJSON `json:"recent,omitempty"`
	Config        ConfigJSON      `json:"config"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of run counts.
type CountsJSON struct {
	FramesObserved     int `json:"frames_observed"`
	DetectionsSeen     int `json:"detections_seen"`
	DetectionsAccepted int `json:"detections_accepted"`
	EventsPublished    int `json:"events_published"`
	EventsDropped      int `json:"events_dropped"`
}

// DetectionJSON is the JSON representation of an accepted detection.
type DetectionJSON struct {
	Time      string `json:"time"`
	Payload   string `json:"payload"`
	Symbology string `json:"symbology"`
	Status    string `json:"status"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs      int64  `json:"poll_ms"`
	CooldownMs  int64  `json:"cooldown_ms"`
	SweepMs     int64  `json:"sweep_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	BaseURL     string `json:"base_url"`
	CameraPath  string `json:"camera_path"`
	ResultsPath string `json:"results_path"`
	Broker      string `json:"broker,omitempty"`
	HTTPAddr    string `json:"http_addr"`
	OpenURLs    bool   `json:"open_urls"`
	SendToWeb   bool   `json:"send_to_web"`
}

func buildInner(snap Snapshot) StatusInner {
	inner := StatusInner{
		LastToken:     snap.LastToken,
		WindowSize:    snap.WindowSize,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			FramesObserved:     snap.Counts.FramesObserved,
			DetectionsSeen:     snap.Counts.DetectionsSeen,
			DetectionsAccepted: snap.Counts.DetectionsAccepted,
			EventsPublished:    snap.Counts.EventsPublished,
			EventsDropped:      snap.Counts.EventsDropped,
		},
		Config: ConfigJSON{
			PollMs:      snap.Config.PollMs,
			CooldownMs:  snap.Config.CooldownMs,
			SweepMs:     snap.Config.SweepMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			BaseURL:     snap.Config.BaseURL,
			CameraPath:  snap.Config.CameraPath,
			ResultsPath: snap.Config.ResultsPath,
			Broker:      snap.Config.Broker,
			HTTPAddr:    snap.Config.HTTPAddr,
			OpenURLs:    snap.Config.OpenURLs,
			SendToWeb:   snap.Config.SendToWeb,
		},
	}

	for _, rec := range snap.Recent {
		inner.Recent = append(inner.Recent, DetectionJSON{
			Time:      rec.Time.UTC().Format(time.RFC3339),
			Payload:   rec.Payload,
			Symbology: rec.Symbology,
			Status:    rec.Status,
		})
	}

	return inner
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
