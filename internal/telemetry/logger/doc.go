// Package logger is a thin log/slog front end for encodebench.
//
// Records go to stderr so that stdout carries only the benchmark report.
// The runner stores its run ID in the context with WithRunID and logs
// through L, which tags every record with run_id.
package logger
