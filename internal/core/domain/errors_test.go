package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestServiceError(t *testing.T) {
	err := &domain.ServiceError{
		StatusCode: 400,
		Errors: []domain.ServiceErrorDetail{
			{Code: "11013", Message: "senderAreaCode invalid value."},
			{Code: "11014", Message: "senderPhone invalid value."},
		},
	}

	assert.Equal(t,
		"service error: [11013] senderAreaCode invalid value.; [11014] senderPhone invalid value. (status: 400)",
		err.Error())
	assert.True(t, err.HasCode("11014"))
	assert.False(t, err.HasCode("99999"))

	wrapped := fmt.Errorf("subscribe: %w", err)
	assert.True(t, errors.Is(wrapped, domain.ErrService))
	got, ok := domain.IsServiceError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, err, got)
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &domain.TransportError{Method: "POST", URL: "https://ws.example/pre-approvals", Err: cause}

	assert.True(t, errors.Is(err, domain.ErrTransport))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "POST https://ws.example/pre-approvals")
}

func TestCategorizeError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.ErrorCategory
	}{
		{"validation", domain.NewMissingRequiredFieldError("plan"), domain.CategoryClientError},
		{"business rule", &domain.ServiceError{StatusCode: 400}, domain.CategoryBusinessRule},
		{"service outage", &domain.ServiceError{StatusCode: 503}, domain.CategoryTransient},
		{"network", &domain.TransportError{Err: errors.New("reset")}, domain.CategoryTransient},
		{"throttled", &domain.TransportError{StatusCode: 429}, domain.CategoryTransient},
		{"unauthorized", &domain.TransportError{StatusCode: 401}, domain.CategoryPermanent},
		{"bad gateway page", &domain.TransportError{StatusCode: 502, Err: domain.NewDecodeError("unexpected root", nil)}, domain.CategoryTransient},
		{"decode", domain.NewMissingElementError("code"), domain.CategoryInfrastructure},
		{"cancelled", &domain.TransportError{Err: context.Canceled}, domain.CategoryPermanent},
		{"deadline", context.DeadlineExceeded, domain.CategoryTransient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.CategorizeError(tc.err))
			assert.Equal(t, tc.want == domain.CategoryTransient, domain.IsRetryable(tc.err))
		})
	}

	assert.Equal(t, domain.ErrorCategory(""), domain.CategorizeError(nil))
}
