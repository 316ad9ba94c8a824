// Package classify decides how a decoded payload should be handled.
package classify

import "net/url"

// IsActionableURL reports whether payload is a URL worth opening: it
// must parse with both a scheme and a host. Bare hostnames and schemes
// without an authority, like mailto links, are treated as plain text.
func IsActionableURL(payload string) bool {
	u, err := url.Parse(payload)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
