// Package indicator drives a detection LED so the daemon can signal
// accepted detections on headless installs.
package indicator

// DefaultPin is the default BCM pin for the detection LED.
const DefaultPin = 17

// Output is a single on/off line.
type Output interface {
	// Set drives the line high or low.
	Set(on bool) error

	// Close releases the line.
	Close() error
}
