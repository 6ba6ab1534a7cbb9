package telemetry

import (
	"context"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsObserver counts calls and failures and records call latency.
type MetricsObserver struct {
	CallCount    metric.Int64Counter
	ErrorCount   metric.Int64Counter
	CallDuration metric.Float64Histogram
}

// NewMetricsObserver uses the global provider when mp is nil.
func NewMetricsObserver(mp metric.MeterProvider) (*MetricsObserver, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	callCount, err := meter.Int64Counter(
		"pagseguro.calls",
		metric.WithDescription("Total number of payment service calls"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"pagseguro.errors",
		metric.WithDescription("Total number of failed payment service calls"),
	)
	if err != nil {
		return nil, err
	}

	callDuration, err := meter.Float64Histogram(
		"pagseguro.call.duration",
		metric.WithDescription("Payment service call duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &MetricsObserver{
		CallCount:    callCount,
		ErrorCount:   errorCount,
		CallDuration: callDuration,
	}, nil
}

func (m *MetricsObserver) CallStarted(ctx context.Context, _ ports.CallInfo) context.Context {
	return ctx
}

func (m *MetricsObserver) CallFinished(ctx context.Context, info ports.CallInfo, result ports.CallResult) {
	op := attribute.String("operation", string(info.Operation))

	m.CallCount.Add(ctx, 1, metric.WithAttributes(op))
	m.CallDuration.Record(ctx, result.Duration.Seconds(), metric.WithAttributes(op))

	if result.Err != nil {
		m.ErrorCount.Add(ctx, 1, metric.WithAttributes(
			op,
			attribute.String("category", string(domain.CategorizeError(result.Err))),
		))
	}
}
