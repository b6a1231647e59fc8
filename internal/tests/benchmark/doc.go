// Package benchmark provides Go benchmarks for the shifter and the runner.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Compare buffer modes across input sizes:
//
//	go test -bench=BenchmarkShift -benchmem -count=5 ./internal/tests/benchmark/... | tee shift.txt
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
