// Package shutdown ties process termination signals to a context.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//
// A run that has not started its timed loop when SIGINT or SIGTERM arrives
// returns context.Canceled instead of reporting a time.
package shutdown
