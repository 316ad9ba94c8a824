// Package frames fetches camera frames from the remote frame store.
// The real implementation polls an HTTP key-value endpoint.
// The fake implementation allows testing without a camera.
package frames

// Source fetches the most recent frame from the remote store.
type Source interface {
	// Fetch returns the latest transport-encoded frame payload and its
	// source-assigned token. The token is opaque and only ever compared
	// for equality. A store with no frame available returns ("", "", nil).
	Fetch() (payload string, token string, err error)

	// Close releases transport resources.
	Close() error
}
