package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signals are the signals that cancel the context from WithSignals.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// WithSignals returns a copy of parent that is canceled on the first
// SIGINT or SIGTERM. After the first signal, default handling is restored
// so a second signal terminates the process. stop releases the signal
// registration and must be called.
func WithSignals(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, Signals...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-sigCh:
			signal.Stop(sigCh)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
		<-done
	}
}
