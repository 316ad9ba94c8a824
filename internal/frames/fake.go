package frames

import "errors"

// Sample is one scripted fetch result.
type Sample struct {
	Payload string
	Token   string
}

// FakeSource is a test double that returns scripted fetch results.
type FakeSource struct {
	// Samples contains scripted (payload, token) pairs to return.
	// Each call to Fetch() consumes the next sample.
	Samples []Sample

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// FetchError, if set, will be returned by Fetch()
	FetchError error
}

// NewFakeSource creates a FakeSource with the given samples.
func NewFakeSource(samples []Sample) *FakeSource {
	return &FakeSource{Samples: samples}
}

// Fetch returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeSource) Fetch() (string, string, error) {
	if f.FetchError != nil {
		return "", "", f.FetchError
	}

	if len(f.Samples) == 0 {
		return "", "", errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample.Payload, sample.Token, nil
}

// Close marks the source as closed.
func (f *FakeSource) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the source to the beginning of samples.
func (f *FakeSource) Reset() {
	f.index = 0
	f.Closed = false
}
