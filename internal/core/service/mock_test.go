package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
)

// MockTransport
type MockTransport struct {
	mu       sync.Mutex
	calls    int
	requests []*ports.Request
	Delay    time.Duration
	DoFn     func(ctx context.Context, req *ports.Request) (*ports.Response, error)
}

func (m *MockTransport) Do(ctx context.Context, req *ports.Request) (*ports.Response, error) {
	m.mu.Lock()
	m.calls++
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	if m.DoFn != nil {
		return m.DoFn(ctx, req)
	}
	return &ports.Response{StatusCode: http.StatusOK}, nil
}

func (m *MockTransport) GetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockTransport) LastRequest() *ports.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// respond returns a DoFn answering every call with the given status and body.
func respond(status int, contentType, body string) func(context.Context, *ports.Request) (*ports.Response, error) {
	return func(context.Context, *ports.Request) (*ports.Response, error) {
		h := http.Header{}
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		return &ports.Response{StatusCode: status, Header: h, Body: []byte(body)}, nil
	}
}

// MockObserver
type MockObserver struct {
	mu       sync.Mutex
	started  []ports.CallInfo
	finished []ports.CallInfo
	results  []ports.CallResult
}

func (m *MockObserver) CallStarted(ctx context.Context, info ports.CallInfo) context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = append(m.started, info)
	return ctx
}

func (m *MockObserver) CallFinished(_ context.Context, info ports.CallInfo, result ports.CallResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished = append(m.finished, info)
	m.results = append(m.results, result)
}
