package indicator

import (
	"errors"
	"testing"
)

func TestFakeOutputRecordsStates(t *testing.T) {
	f := NewFakeOutput()

	f.Set(true)
	f.Set(false)
	f.Set(true)

	want := []bool{true, false, true}
	if len(f.States) != len(want) {
		t.Fatalf("expected %d states, got %d", len(want), len(f.States))
	}
	for i, s := range want {
		if f.States[i] != s {
			t.Errorf("state %d: got %v, want %v", i, f.States[i], s)
		}
	}
	if !f.Last() {
		t.Error("Last should report the most recent state")
	}
}

func TestFakeOutputLastDefaultsOff(t *testing.T) {
	f := NewFakeOutput()
	if f.Last() {
		t.Error("Last should be false before any Set")
	}
}

func TestFakeOutputError(t *testing.T) {
	f := NewFakeOutput()
	f.SetError = errors.New("line gone")

	if err := f.Set(true); err == nil {
		t.Error("expected error to be returned")
	}
	if len(f.States) != 0 {
		t.Error("failed Set should not record a state")
	}
}

func TestFakeOutputClose(t *testing.T) {
	f := NewFakeOutput()

	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}
