package domain

import (
	"context"
	"errors"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	// Context errors come from the caller giving up, never retry them
	if errors.Is(err, context.Canceled) {
		return CategoryPermanent
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTransient
	}

	if _, ok := IsValidationError(err); ok {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		if svcErr.StatusCode >= 500 {
			return CategoryTransient
		}
		return CategoryBusinessRule
	}

	if tErr, ok := IsTransportError(err); ok {
		switch {
		case tErr.StatusCode == 0, tErr.StatusCode == 429, tErr.StatusCode >= 500:
			return CategoryTransient
		default:
			// 401/403/404 without a service body
			return CategoryPermanent
		}
	}

	// Decode errors land here too. A non-2xx response wrapping one was
	// categorized by status above.
	return CategoryInfrastructure
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	return CategorizeError(err) == CategoryTransient
}
