package bench

import (
	"fmt"
	"time"
)

// span is what one pass of the loop leaves behind.
type span struct {
	start, end time.Duration
	last       []byte
	total      int64
	err        error
}

func (s span) elapsed() time.Duration {
	if d := s.end - s.start; d > 0 {
		return d
	}
	return 0
}

// loopAlloc calls the shifter once per iteration. Each output is dropped as
// soon as its length is counted; only the last is kept for the digest.
func (r *Runner) loopAlloc(src []byte) span {
	var s span
	n, off, fn := r.cfg.Iterations, r.cfg.Offset, r.shift

	s.start = r.clock.Now()
	for i := 0; i < n; i++ {
		out, err := fn(src, off)
		if err != nil {
			s.err = fmt.Errorf("iteration %d: %w", i, err)
			break
		}
		s.total += int64(len(out))
		s.last = out
	}
	s.end = r.clock.Now()

	return s
}

// loopScoped shifts into a single buffer owned by the loop, so no
// iteration allocates.
func (r *Runner) loopScoped(src []byte) span {
	var s span
	n, off, fn := r.cfg.Iterations, r.cfg.Offset, r.into
	buf := make([]byte, len(src))

	s.start = r.clock.Now()
	for i := 0; i < n; i++ {
		k, err := fn(buf, src, off)
		if err != nil {
			s.err = fmt.Errorf("iteration %d: %w", i, err)
			break
		}
		s.total += int64(k)
	}
	s.end = r.clock.Now()

	if n > 0 {
		s.last = buf
	}
	return s
}
