//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

type cpuClock struct {
	fallback Clock
}

// ProcessCPU returns a clock that reads the user plus system CPU time
// consumed by the current process.
//
// If getrusage fails the reading falls back to the wall clock.
func ProcessCPU() Clock {
	return &cpuClock{fallback: Wall()}
}

func (c *cpuClock) Now() time.Duration {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return c.fallback.Now()
	}
	return timevalDuration(ru.Utime) + timevalDuration(ru.Stime)
}

func (c *cpuClock) Name() string {
	return NameCPU
}

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Nano())
}
