package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignal returns a context that is cancelled on an interrupt or
// terminate signal, or when parent is done.
func shutdownSignal(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
