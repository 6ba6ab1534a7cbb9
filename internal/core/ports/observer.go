package ports

import (
	"context"
	"time"
)

// Operation names one facade call, e.g. "authorizations.register".
type Operation string

// CallInfo describes an outbound call as seen by an Observer.
type CallInfo struct {
	Operation Operation
	RequestID string
	Method    string
	URL       string
	// Fields is the debug rendering of the request payload with secrets removed.
	Fields string
}

// CallResult is reported once per call, on success or failure.
type CallResult struct {
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Observer is the tracing boundary of the library. The core never logs on its
// own; it reports here and the sink decides what to record.
type Observer interface {
	CallStarted(ctx context.Context, info CallInfo) context.Context
	CallFinished(ctx context.Context, info CallInfo, result CallResult)
}
