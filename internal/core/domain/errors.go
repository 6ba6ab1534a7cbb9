package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks across the taxonomy.
var (
	ErrValidation = errors.New("validation error")
	ErrTransport  = errors.New("transport error")
	ErrDecode     = errors.New("decode error")
	ErrService    = errors.New("service error")
)

// ValidationError reports a request object that cannot be sent.
// It is always raised before any I/O happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewMissingRequiredFieldError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: "is required",
	}
}

func NewInvalidFieldError(field, reason string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: reason,
	}
}

// TransportError wraps network failures and non-2xx responses that carry no
// service error body.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString("transport error")
	if e.Method != "" {
		fmt.Fprintf(&b, " [%s %s]", e.Method, e.URL)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status: %d)", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError means the response could not be understood, as opposed to the
// service refusing the request.
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func NewDecodeError(message string, err error) *DecodeError {
	return &DecodeError{Message: message, Err: err}
}

func NewMissingElementError(element string) *DecodeError {
	return &DecodeError{Message: fmt.Sprintf("required element <%s> is missing", element)}
}

// ServiceErrorDetail is one (code, message) pair of an <errors> payload.
type ServiceErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServiceError is the remote service telling us no. Details keep the order in
// which the service reported them.
type ServiceError struct {
	StatusCode int
	Errors     []ServiceErrorDetail
}

func (e *ServiceError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		parts = append(parts, fmt.Sprintf("[%s] %s", d.Code, d.Message))
	}
	msg := "service error: " + strings.Join(parts, "; ")
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status: %d)", e.StatusCode)
	}
	return msg
}

func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

// Codes returns the error codes in the order reported.
func (e *ServiceError) Codes() []string {
	codes := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		codes = append(codes, d.Code)
	}
	return codes
}

func (e *ServiceError) HasCode(code string) bool {
	for _, d := range e.Errors {
		if d.Code == code {
			return true
		}
	}
	return false
}

func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}

func IsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	ok := errors.As(err, &tErr)
	return tErr, ok
}

func IsDecodeError(err error) (*DecodeError, bool) {
	var dErr *DecodeError
	ok := errors.As(err, &dErr)
	return dErr, ok
}

func IsServiceError(err error) (*ServiceError, bool) {
	var sErr *ServiceError
	ok := errors.As(err, &sErr)
	return sErr, ok
}
