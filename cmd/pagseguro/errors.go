package main

import (
	"encoding/json"
	"io"

	pagseguro "github.com/DanielPopoola/pagseguro-go"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail lists service errors in the order the service reported them.
type ErrorDetail struct {
	Code     string                         `json:"code"`
	Category string                         `json:"category"`
	Message  string                         `json:"message"`
	Field    string                         `json:"field,omitempty"`
	Status   int                            `json:"status,omitempty"`
	Details  []pagseguro.ServiceErrorDetail `json:"details,omitempty"`
}

// writeError renders err as a JSON envelope and returns the process exit code.
func writeError(w io.Writer, err error) int {
	detail := ErrorDetail{
		Code:     errorCode(err),
		Category: string(pagseguro.CategorizeError(err)),
		Message:  err.Error(),
	}

	if vErr, ok := pagseguro.IsValidationError(err); ok {
		detail.Field = vErr.Field
	}
	if svcErr, ok := pagseguro.IsServiceError(err); ok {
		detail.Status = svcErr.StatusCode
		detail.Details = svcErr.Errors
	}
	if tErr, ok := pagseguro.IsTransportError(err); ok {
		detail.Status = tErr.StatusCode
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(ErrorResponse{Success: false, Error: detail})

	return exitCode(err)
}

func errorCode(err error) string {
	if _, ok := pagseguro.IsValidationError(err); ok {
		return "VALIDATION_ERROR"
	}
	if _, ok := pagseguro.IsServiceError(err); ok {
		return "SERVICE_ERROR"
	}
	if _, ok := pagseguro.IsTransportError(err); ok {
		return "TRANSPORT_ERROR"
	}
	if _, ok := pagseguro.IsDecodeError(err); ok {
		return "DECODE_ERROR"
	}
	return "INTERNAL_ERROR"
}

// exitCode follows sysexits: 64 usage, 65 data, 69 unavailable, 70 software.
func exitCode(err error) int {
	switch pagseguro.CategorizeError(err) {
	case pagseguro.CategoryClientError:
		return 64
	case pagseguro.CategoryBusinessRule:
		return 65
	case pagseguro.CategoryTransient:
		return 69
	default:
		return 70
	}
}
