package transport

import (
	"context"
	"math/rand"
	"time"

	"github.com/DanielPopoola/pagseguro-go/internal/config"
	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
)

// RetryTransport re-sends calls that failed with a transient error. Status
// codes of 5xx and 429 count as transient, as do network failures.
// It is opt-in: registration calls are not idempotent on the remote side.
type RetryTransport struct {
	inner      ports.Transport
	baseDelay  time.Duration
	maxRetries int
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewRetryTransport(inner ports.Transport, cfg config.RetryConfig) *RetryTransport {
	maxRetries := int(cfg.MaxRetries)
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryTransport{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
		sleep:      sleepCtx,
	}
}

var _ ports.Transport = (*RetryTransport)(nil)

func (r *RetryTransport) Do(ctx context.Context, req *ports.Request) (*ports.Response, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}

		resp, err := r.inner.Do(ctx, req)
		if err == nil {
			err = statusError(req, resp)
			if err == nil {
				return resp, nil
			}
			// Out of attempts: the caller still decodes the last response.
			if attempt == r.maxRetries-1 || !domain.IsRetryable(err) {
				return resp, nil
			}
		} else if !domain.IsRetryable(err) {
			return nil, err
		}

		lastErr = err

		if attempt < r.maxRetries-1 {
			if err := r.sleep(ctx, r.backoff(attempt)); err != nil {
				return nil, lastErr
			}
		}
	}

	return nil, lastErr
}

// statusError turns a retryable status into an error so it can be
// categorized like any other failure.
func statusError(req *ports.Request, resp *ports.Response) error {
	if resp.StatusCode < 500 && resp.StatusCode != 429 {
		return nil
	}
	return &domain.TransportError{
		Method:     req.Method,
		URL:        req.URL,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
}

// Backoff calculation with exponential delay and jitter
func (r *RetryTransport) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if r.baseDelay <= 0 {
		return 0
	}

	jitter := time.Duration(rand.Int63n(int64(r.baseDelay)))

	return base + jitter
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
