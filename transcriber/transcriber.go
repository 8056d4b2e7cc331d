// Package transcriber uploads recorded clips to a speech-to-text API and
// maps the outcome onto a small failure taxonomy. Each call is a single
// synchronous request; there are no internal retries and no shared state
// between calls.
package transcriber

import (
	"context"

	"github.com/bdurukan/texxteditor/audio"
)

// KeyProvider hands the client its API key. The client does not manage key
// storage or validation beyond "present or not".
type KeyProvider interface {
	APIKey() string
}

// StaticKey is a KeyProvider for a fixed key, mostly for tests.
type StaticKey string

func (k StaticKey) APIKey() string { return string(k) }

// Result is a successful transcription. Text is trimmed of leading and
// trailing whitespace only; interior formatting is preserved. An empty Text
// means the clip was empty or the service heard nothing.
type Result struct {
	Text    string
	Metrics *NetworkMetrics // nil when no request was made
}

// Service is what callers program against; Client talks to the real API
// and Fake stands in for it.
type Service interface {
	Transcribe(ctx context.Context, wavBytes []byte) (*Result, error)
	ProcessClip(ctx context.Context, clip *audio.Clip) (*Result, error)
}
