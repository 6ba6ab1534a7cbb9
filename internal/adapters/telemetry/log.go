package telemetry

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
)

// LogObserver writes one debug line when a call starts and one line when it
// ends. Failures are logged at warn for client-side categories and at error
// otherwise.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger.With("component", "pagseguro")}
}

func (o *LogObserver) CallStarted(ctx context.Context, info ports.CallInfo) context.Context {
	o.logger.DebugContext(ctx, "calling payment service",
		"operation", info.Operation,
		"request_id", info.RequestID,
		"method", info.Method,
		"url", info.URL,
	)
	return ctx
}

func (o *LogObserver) CallFinished(ctx context.Context, info ports.CallInfo, result ports.CallResult) {
	attrs := []any{
		"operation", info.Operation,
		"request_id", info.RequestID,
		"url", info.URL,
		"status", result.StatusCode,
		"duration", result.Duration,
	}
	if info.Fields != "" {
		attrs = append(attrs, "fields", info.Fields)
	}

	if result.Err == nil {
		o.logger.InfoContext(ctx, "payment service call succeeded", attrs...)
		return
	}

	category := domain.CategorizeError(result.Err)
	attrs = append(attrs, "error", result.Err, "category", category)

	switch category {
	case domain.CategoryClientError, domain.CategoryBusinessRule:
		o.logger.WarnContext(ctx, "payment service call rejected", attrs...)
	default:
		o.logger.ErrorContext(ctx, "payment service call failed", attrs...)
	}
}
