package ports

import (
	"context"
	"net/http"
	"net/url"
)

// Request is a fully built outbound call. Body is already encoded in the
// charset the endpoint declares.
//
// Query carries the credentials. It is kept apart from URL so that only the
// last hop before the wire ever sees it; URL is safe to log and trace.
// Implementations must not modify it.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is the raw answer of the remote service.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport executes HTTP calls against the payment service. Implementations
// return a *domain.TransportError for I/O failures and hand back every
// response, whatever its status, for the caller to decode.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}
