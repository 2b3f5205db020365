package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context that is canceled when one of the
// shutdown signals is received. Call stop() to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
