// Package bench runs the timed shift loop.
//
// A Runner calls the shifter a fixed number of times with the same input and
// offset, discards each output, and measures the span of the whole loop with
// a single pair of clock readings:
//
//	r := bench.NewRunner(bench.DefaultConfig())
//	res, err := r.Run(ctx)
//	bench.WriteReport(os.Stdout, res) // Program finished in 0.012345 seconds
//
// The loop runs on the calling goroutine, never polls the context and never
// touches metrics or logs between the two clock readings. There is no
// warm-up, repetition or statistical treatment.
package bench
