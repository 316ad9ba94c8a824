// Package dedup suppresses repeat sightings of a payload inside a
// cooldown window.
package dedup

import "time"

// Window tracks recently accepted payloads. A payload is accepted if it
// has never been seen, or if at least the cooldown has elapsed since it
// was last accepted. Rejections do not refresh the timestamp, so a code
// held in front of the camera re-fires on a fixed cadence.
type Window struct {
	cooldown time.Duration
	accepted map[string]time.Time
}

// NewWindow creates a dedup window with the given cooldown.
func NewWindow(cooldown time.Duration) *Window {
	return &Window{
		cooldown: cooldown,
		accepted: make(map[string]time.Time),
	}
}

// ShouldAccept reports whether the payload should fire at the given
// time, recording the acceptance when it does.
func (w *Window) ShouldAccept(payload string, now time.Time) bool {
	if last, ok := w.accepted[payload]; ok && now.Sub(last) < w.cooldown {
		return false
	}
	w.accepted[payload] = now
	return true
}

// Sweep drops entries old enough that they can no longer influence an
// acceptance decision, and returns how many were removed. Entries at
// exactly twice the cooldown are kept.
func (w *Window) Sweep(now time.Time) int {
	removed := 0
	for payload, last := range w.accepted {
		if now.Sub(last) > 2*w.cooldown {
			delete(w.accepted, payload)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked payloads.
func (w *Window) Len() int {
	return len(w.accepted)
}
