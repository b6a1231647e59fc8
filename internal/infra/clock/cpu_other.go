//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris

package clock

// ProcessCPU falls back to the wall clock where getrusage is unavailable.
func ProcessCPU() Clock {
	return Wall()
}
