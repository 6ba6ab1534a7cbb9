package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/pagseguro-go/internal/config"
	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// maxBodySize caps how much of a response is buffered.
const maxBodySize = 4 << 20

type HTTPClient struct {
	httpClient *http.Client
	userAgent  string
}

// Option adjusts the underlying *http.Client.
type Option func(*http.Client)

// WithTracing wraps the round tripper so each HTTP exchange gets its own
// client span and the trace context is propagated to the service. A nil
// provider means the global one. The span sees the URL before credentials
// are added.
func WithTracing(tp trace.TracerProvider) Option {
	return func(c *http.Client) {
		base := c.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		var opts []otelhttp.Option
		if tp != nil {
			opts = append(opts, otelhttp.WithTracerProvider(tp))
		}
		c.Transport = otelhttp.NewTransport(base, opts...)
	}
}

type credentialsKey struct{}

// credentialTransport appends the request's credential query at the bottom
// of the round tripper chain, below any instrumentation.
type credentialTransport struct {
	base http.RoundTripper
}

func (t credentialTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	creds, _ := r.Context().Value(credentialsKey{}).(url.Values)
	if len(creds) == 0 {
		return t.base.RoundTrip(r)
	}

	out := r.Clone(r.Context())
	query := out.URL.Query()
	for k, vs := range creds {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	out.URL.RawQuery = query.Encode()
	return t.base.RoundTrip(out)
}

func withCredentials(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return credentialTransport{base: base}
}

func NewHTTPClient(cfg config.HTTPConfig, opts ...Option) *HTTPClient {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: withCredentials(nil),
	}
	for _, opt := range opts {
		opt(httpClient)
	}
	return &HTTPClient{
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
	}
}

// NewHTTPClientWith wraps an existing *http.Client, for callers that manage
// their own connection pool or proxies. The client is copied; credentials are
// added on top of its transport, so instrumentation inside that transport
// sees them.
func NewHTTPClientWith(client *http.Client, userAgent string) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	own := *client
	own.Transport = withCredentials(client.Transport)
	return &HTTPClient{httpClient: &own, userAgent: userAgent}
}

var _ ports.Transport = (*HTTPClient)(nil)

func (c *HTTPClient) Do(ctx context.Context, req *ports.Request) (*ports.Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	if len(req.Query) > 0 {
		ctx = context.WithValue(ctx, credentialsKey{}, req.Query)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, &domain.TransportError{
			Method: req.Method,
			URL:    req.URL,
			Err:    fmt.Errorf("error creating request: %w", err),
		}
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if c.userAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.TransportError{
			Method: req.Method,
			URL:    req.URL,
			Err:    fmt.Errorf("error making request: %w", err),
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &domain.TransportError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("error reading response body: %w", err),
		}
	}

	return &ports.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
