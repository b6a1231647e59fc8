// Package clock provides the time sources used to measure a benchmark run.
//
// Readings are durations relative to an arbitrary origin; only the
// difference between two readings of the same clock is meaningful.
package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clock names accepted by ByName.
const (
	NameWall = "wall"
	NameCPU  = "cpu"
)

// ErrUnknownClock is returned by ByName for an unsupported clock name.
var ErrUnknownClock = errors.New("clock: unknown clock")

// Clock is a source of elapsed-time readings.
type Clock interface {
	// Now returns the current reading.
	Now() time.Duration
	// Name identifies the clock in logs and results.
	Name() string
}

type wallClock struct {
	origin time.Time
}

// Wall returns a clock backed by the monotonic wall clock.
func Wall() Clock {
	return &wallClock{origin: time.Now()}
}

func (c *wallClock) Now() time.Duration {
	return time.Since(c.origin)
}

func (c *wallClock) Name() string {
	return NameWall
}

// ByName returns the clock registered under name (case-insensitive).
func ByName(name string) (Clock, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameWall, "":
		return Wall(), nil
	case NameCPU:
		return ProcessCPU(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClock, name)
	}
}

// Func adapts a function to the Clock interface.
type Func func() time.Duration

// Now calls f.
func (f Func) Now() time.Duration {
	return f()
}

// Name returns "func".
func (f Func) Name() string {
	return "func"
}
