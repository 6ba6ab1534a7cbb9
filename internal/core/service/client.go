package service

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanielPopoola/pagseguro-go/internal/adapters/codec"
	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
	"github.com/google/uuid"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded; charset=" + codec.Charset
	contentTypeXML  = "application/xml; charset=" + codec.Charset
	acceptHeader    = "application/xml;charset=" + codec.Charset

	requestIDHeader = "X-Request-Id"
)

// Form fields that never reach an observer in clear text.
var sensitiveFields = []string{
	"paymentMethod.creditCard.token",
	"sender.hash",
}

// Client carries what every resource call shares: where to send it, who is
// calling and what to tell about it. It holds no per-call state and is safe
// for concurrent use.
type Client struct {
	baseURL     string
	credentials url.Values
	transport   ports.Transport
	observer    ports.Observer
}

type nopObserver struct{}

func (nopObserver) CallStarted(ctx context.Context, _ ports.CallInfo) context.Context { return ctx }

func (nopObserver) CallFinished(context.Context, ports.CallInfo, ports.CallResult) {}

// NewClient builds a Client. credentials are sent as query parameters on every
// call; observer may be nil.
func NewClient(baseURL string, credentials map[string]string, transport ports.Transport, observer ports.Observer) *Client {
	creds := url.Values{}
	for k, v := range credentials {
		creds.Set(k, v)
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: creds,
		transport:   transport,
		observer:    observer,
	}
}

// payload is an encoded request body plus its debug rendering. query, when
// set, is appended to the endpoint URL.
type payload struct {
	body        []byte
	contentType string
	fields      string
	query       string
}

func formPayload(m *codec.FieldMap) (payload, error) {
	body, err := m.Encode()
	if err != nil {
		return payload{}, err
	}
	return payload{
		body:        body,
		contentType: contentTypeForm,
		fields:      m.Redacted(sensitiveFields...),
	}, nil
}

func queryPayload(m *codec.FieldMap) (payload, error) {
	q, err := m.Encode()
	if err != nil {
		return payload{}, err
	}
	return payload{query: string(q), fields: m.String()}, nil
}

func xmlPayload(doc []byte) payload {
	return payload{body: doc, contentType: contentTypeXML}
}

type call[R any] struct {
	op     ports.Operation
	method string
	path   string
	build  func() (payload, error)
	decode func([]byte, ...codec.DecodeOption) (*R, error)
}

// execute runs one call end to end. Request building happens inside the
// observed window so rejected requests are reported too, but it always
// completes before the transport is touched.
func execute[R any](ctx context.Context, c *Client, cl call[R]) (*R, error) {
	info := ports.CallInfo{
		Operation: cl.op,
		RequestID: uuid.NewString(),
		Method:    cl.method,
		URL:       c.baseURL + cl.path,
	}

	start := time.Now()
	ctx = c.observer.CallStarted(ctx, info)

	var (
		result *R
		status int
	)
	resp, err := c.send(ctx, &info, cl.build)
	if err == nil {
		status = resp.StatusCode
		result, err = decodeResponse(info, resp, cl.decode)
	}

	c.observer.CallFinished(ctx, info, ports.CallResult{
		StatusCode: status,
		Duration:   time.Since(start),
		Err:        err,
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) send(ctx context.Context, info *ports.CallInfo, build func() (payload, error)) (*ports.Response, error) {
	var p payload
	if build != nil {
		var err error
		if p, err = build(); err != nil {
			return nil, err
		}
	}
	info.Fields = p.fields
	if p.query != "" {
		info.URL += "?" + p.query
	}

	header := http.Header{}
	header.Set("Accept", acceptHeader)
	header.Set(requestIDHeader, info.RequestID)
	if p.contentType != "" {
		header.Set("Content-Type", p.contentType)
	}

	resp, err := c.transport.Do(ctx, &ports.Request{
		Method: info.Method,
		URL:    info.URL,
		Query:  c.credentials,
		Header: header,
		Body:   p.body,
	})
	if err != nil {
		return nil, redactTransportError(err, info.Method, info.URL)
	}
	return resp, nil
}

// decodeResponse maps a raw response to its result. A service error keeps
// the HTTP status; a non-2xx response that is not an error document becomes
// a TransportError carrying status and body.
func decodeResponse[R any](info ports.CallInfo, resp *ports.Response, decode func([]byte, ...codec.DecodeOption) (*R, error)) (*R, error) {
	result, err := decode(resp.Body, responseCharset(resp.Header)...)

	if svcErr, ok := domain.IsServiceError(err); ok {
		svcErr.StatusCode = resp.StatusCode
		return nil, svcErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.TransportError{
			Method:     info.Method,
			URL:        info.URL,
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			Err:        err,
		}
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}

// redactTransportError makes sure every transport failure is a
// TransportError naming the credential-free endpoint. Custom transports may
// echo the full wire URL back in their errors.
func redactTransportError(err error, method, endpoint string) error {
	tErr, ok := domain.IsTransportError(err)
	if !ok {
		err = &domain.TransportError{Method: method, URL: endpoint, Err: err}
	} else if tErr.URL != "" {
		tErr.URL = endpoint
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = endpoint
	}
	return err
}

// responseCharset passes the Content-Type charset to the decoder, which uses
// it only when the document has no declaration of its own.
func responseCharset(h http.Header) []codec.DecodeOption {
	_, params, err := mime.ParseMediaType(h.Get("Content-Type"))
	if err != nil || params["charset"] == "" {
		return nil
	}
	return []codec.DecodeOption{codec.WithCharset(params["charset"])}
}
