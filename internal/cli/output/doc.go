// Package output renders benchmark results.
//
// The text format is the canonical single report line. The table, json
// and yaml formats describe the whole run and are meant for humans or
// scripts comparing runs.
package output
