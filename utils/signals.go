package utils

import (
	"context"
	"os"
	"os/signal"
)

// SignalContext is cancelled on the first interrupt.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

func Wait() {
	ctx, cancel := SignalContext(context.Background())
	defer cancel()
	<-ctx.Done()
}
