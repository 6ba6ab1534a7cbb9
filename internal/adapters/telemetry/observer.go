package telemetry

import (
	"context"

	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
)

// Observers fans events out to every sink in order. Finish events are
// delivered in reverse so nested spans close properly.
type Observers []ports.Observer

func (o Observers) CallStarted(ctx context.Context, info ports.CallInfo) context.Context {
	for _, obs := range o {
		if obs != nil {
			ctx = obs.CallStarted(ctx, info)
		}
	}
	return ctx
}

func (o Observers) CallFinished(ctx context.Context, info ports.CallInfo, result ports.CallResult) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i] != nil {
			o[i].CallFinished(ctx, info, result)
		}
	}
}

type nop struct{}

func (nop) CallStarted(ctx context.Context, _ ports.CallInfo) context.Context { return ctx }

func (nop) CallFinished(context.Context, ports.CallInfo, ports.CallResult) {}

// Nop discards every event.
var Nop ports.Observer = nop{}
