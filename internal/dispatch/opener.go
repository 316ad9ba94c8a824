package dispatch

import "github.com/pkg/browser"

// Opener launches a URL in the local environment.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the host's default browser.
type BrowserOpener struct{}

// Open launches the default browser at url.
func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// FakeOpener records open attempts for test assertions.
type FakeOpener struct {
	// Opened contains every URL an open was attempted for.
	Opened []string

	// OpenError, if set, will be returned by Open.
	OpenError error
}

// Open records the URL.
func (f *FakeOpener) Open(url string) error {
	f.Opened = append(f.Opened, url)
	return f.OpenError
}

// Reset clears recorded opens.
func (f *FakeOpener) Reset() {
	f.Opened = nil
	f.OpenError = nil
}
