package detect

import "image"

// FakeDetector is a test double that returns scripted detection results.
type FakeDetector struct {
	// Results contains scripted per-frame detections. Each call to
	// Detect() consumes the next entry; when exhausted the last entry
	// repeats.
	Results [][]Detection

	// index tracks current position in Results
	index int

	// Calls counts how many times Detect was invoked.
	Calls int

	// DetectError, if set, will be returned by Detect()
	DetectError error
}

// NewFakeDetector creates a FakeDetector with the given scripted results.
func NewFakeDetector(results [][]Detection) *FakeDetector {
	return &FakeDetector{Results: results}
}

// Detect returns the next scripted result. With no results configured it
// reports an empty frame.
func (f *FakeDetector) Detect(img image.Image) ([]Detection, error) {
	f.Calls++

	if f.DetectError != nil {
		return nil, f.DetectError
	}

	if len(f.Results) == 0 {
		return nil, nil
	}

	result := f.Results[f.index]
	if f.index < len(f.Results)-1 {
		f.index++
	}
	return result, nil
}

// Reset resets the detector to the beginning of results.
func (f *FakeDetector) Reset() {
	f.index = 0
	f.Calls = 0
}
