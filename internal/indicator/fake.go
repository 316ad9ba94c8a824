package indicator

// FakeOutput records LED states for test assertions.
type FakeOutput struct {
	// States contains every value passed to Set, in order.
	States []bool

	// Closed tracks if Close was called.
	Closed bool

	// SetError, if set, will be returned by Set.
	SetError error
}

// NewFakeOutput creates a FakeOutput for testing.
func NewFakeOutput() *FakeOutput {
	return &FakeOutput{}
}

// Set records the state.
func (f *FakeOutput) Set(on bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.States = append(f.States, on)
	return nil
}

// Close marks the output as closed.
func (f *FakeOutput) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recent state, or false if Set was never called.
func (f *FakeOutput) Last() bool {
	if len(f.States) == 0 {
		return false
	}
	return f.States[len(f.States)-1]
}

var _ Output = (*FakeOutput)(nil)
