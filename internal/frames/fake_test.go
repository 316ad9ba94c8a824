package frames

import (
	"errors"
	"testing"
)

func TestFakeSourceFetch(t *testing.T) {
	samples := []Sample{
		{Payload: "p1", Token: "t1"},
		{Payload: "p2", Token: "t2"},
		{Payload: "p3", Token: "t3"},
	}

	f := NewFakeSource(samples)

	for i, want := range samples {
		payload, token, err := f.Fetch()
		if err != nil {
			t.Fatalf("sample %d: unexpected error: %v", i, err)
		}
		if payload != want.Payload || token != want.Token {
			t.Errorf("sample %d: expected (%q, %q), got (%q, %q)", i, want.Payload, want.Token, payload, token)
		}
	}

	// Fourth fetch should repeat the last sample.
	payload, token, err := f.Fetch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != "p3" || token != "t3" {
		t.Errorf("repeat fetch: expected (p3, t3), got (%q, %q)", payload, token)
	}
}

func TestFakeSourceNoSamples(t *testing.T) {
	f := NewFakeSource(nil)

	_, _, err := f.Fetch()
	if err == nil {
		t.Error("expected error with no samples")
	}
}

func TestFakeSourceError(t *testing.T) {
	f := NewFakeSource([]Sample{{Payload: "p", Token: "t"}})
	f.FetchError = errors.New("simulated error")

	_, _, err := f.Fetch()
	if err == nil {
		t.Error("expected error to be returned")
	}
	if err.Error() != "simulated error" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFakeSourceClose(t *testing.T) {
	f := NewFakeSource([]Sample{{Payload: "p", Token: "t"}})

	if f.Closed {
		t.Error("should not be closed initially")
	}

	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}

func TestFakeSourceReset(t *testing.T) {
	samples := []Sample{
		{Payload: "p1", Token: "t1"},
		{Payload: "p2", Token: "t2"},
	}

	f := NewFakeSource(samples)

	f.Fetch()
	f.Reset()

	payload, token, _ := f.Fetch()
	if payload != "p1" || token != "t1" {
		t.Errorf("after reset: expected (p1, t1), got (%q, %q)", payload, token)
	}
}
