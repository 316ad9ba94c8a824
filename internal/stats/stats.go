// Package stats provides a thread-safe run tracker for the qr-monitor
// daemon. It is read by HTTP handlers and formatted into lifecycle
// events and the final run summary.
package stats

import (
	"sync"
	"time"
)

// Counts aggregates what the poll loop has seen since startup.
type Counts struct {
	FramesObserved     int
	DetectionsSeen     int
	DetectionsAccepted int
	EventsPublished    int
	EventsDropped      int
}

// DetectionRecord is one accepted detection, kept for display.
type DetectionRecord struct {
	Time      time.Time
	Payload   string
	Symbology string
	Status    string
}

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	CooldownMs  int64
	SweepMs     int64
	HeartbeatMs int64
	BaseURL     string
	CameraPath  string
	ResultsPath string
	Broker      string
	HTTPAddr    string
	OpenURLs    bool
	SendToWeb   bool
}

// recentLimit caps how many accepted detections are retained.
const recentLimit = 10

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Counts        Counts
	LastToken     string
	Recent        []DetectionRecord
	WindowSize    int
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets counts, the last processed frame token, and the dedup
// window size. Called from the poll loop on every tick.
func (t *Tracker) Update(counts Counts, lastToken string, windowSize int) {
	t.mu.Lock()
	t.snap.Counts = counts
	t.snap.LastToken = lastToken
	t.snap.WindowSize = windowSize
	t.mu.Unlock()
}

// AddDetection appends an accepted detection, keeping only the newest
// few for display.
func (t *Tracker) AddDetection(rec DetectionRecord) {
	t.mu.Lock()
	t.snap.Recent = append(t.snap.Recent, rec)
	if len(t.snap.Recent) > recentLimit {
		t.snap.Recent = t.snap.Recent[len(t.snap.Recent)-recentLimit:]
	}
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	s.Recent = append([]DetectionRecord(nil), t.snap.Recent...)
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
