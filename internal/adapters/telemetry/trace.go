package telemetry

import (
	"context"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/DanielPopoola/pagseguro-go"

// TraceObserver opens a client span per facade call.
type TraceObserver struct {
	tracer trace.Tracer
}

// NewTraceObserver uses the global provider when tp is nil.
func NewTraceObserver(tp trace.TracerProvider) *TraceObserver {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &TraceObserver{tracer: tp.Tracer(instrumentationName)}
}

func (o *TraceObserver) CallStarted(ctx context.Context, info ports.CallInfo) context.Context {
	ctx, _ = o.tracer.Start(ctx, "pagseguro."+string(info.Operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("pagseguro.operation", string(info.Operation)),
			attribute.String("pagseguro.request_id", info.RequestID),
			attribute.String("http.request.method", info.Method),
			attribute.String("url.full", info.URL),
		),
	)
	return ctx
}

func (o *TraceObserver) CallFinished(ctx context.Context, info ports.CallInfo, result ports.CallResult) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	// Query parameters are only known once the request is built.
	span.SetAttributes(attribute.String("url.full", info.URL))

	if result.StatusCode != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", result.StatusCode))
	}

	if result.Err != nil {
		span.SetAttributes(attribute.String("error.category", string(domain.CategorizeError(result.Err))))
		if svcErr, ok := domain.IsServiceError(result.Err); ok {
			span.SetAttributes(attribute.StringSlice("pagseguro.error_codes", svcErr.Codes()))
		}
		span.RecordError(result.Err)
		span.SetStatus(otelcodes.Error, result.Err.Error())
		return
	}

	span.SetStatus(otelcodes.Ok, "")
}
