package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/yndnr/encodebench/internal/telemetry/metric"
)

// Result describes one completed run.
type Result struct {
	RunID        string
	StartedAt    time.Time
	Iterations   int
	Input        string
	Offset       byte
	Mode         Mode
	Clock        string
	Elapsed      time.Duration
	BytesShifted int64
	Digest       string
}

// Seconds returns the elapsed time in seconds.
func (r *Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Sample converts the result to its metric form.
func (r *Result) Sample() metric.RunSample {
	return metric.RunSample{
		RunID:        r.RunID,
		Mode:         string(r.Mode),
		Clock:        r.Clock,
		Iterations:   r.Iterations,
		BytesShifted: r.BytesShifted,
		Elapsed:      r.Elapsed,
		Digest:       r.Digest,
	}
}

// ReportLine formats the elapsed time the way the benchmark has always
// reported it, with six fractional digits and a trailing newline.
func ReportLine(elapsed time.Duration) string {
	return fmt.Sprintf("Program finished in %.6f seconds\n", elapsed.Seconds())
}

// WriteReport writes the report line for r to w.
func WriteReport(w io.Writer, r *Result) error {
	_, err := io.WriteString(w, ReportLine(r.Elapsed))
	return err
}

// digest fingerprints an output buffer so runs in different modes can be
// compared without keeping the buffer.
func digest(b []byte) string {
	return fmt.Sprintf("%016x", murmur3.Sum64(b))
}
