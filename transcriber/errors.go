package transcriber

import (
	"errors"
	"fmt"
)

// Kind classifies a transcription failure. None of these are retried
// internally; callers decide.
type Kind int

const (
	// KindConfiguration: missing or invalid credentials. No network call
	// was attempted.
	KindConfiguration Kind = iota
	// KindNetwork: transport-level failure (DNS, timeout, reset). The
	// original cause is preserved.
	KindNetwork
	// KindRemoteAPI: the service answered with a non-2xx status. Message
	// carries the parsed error detail or the raw status line.
	KindRemoteAPI
	// KindProcessing: local packaging failure before upload.
	KindProcessing
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindNetwork:
		return "network"
	case KindRemoteAPI:
		return "remote api"
	case KindProcessing:
		return "processing"
	default:
		return "unknown"
	}
}

// Error is the typed failure every transcriber operation returns.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the failure classification from an error chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
