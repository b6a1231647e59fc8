package output

import (
	"time"

	"github.com/yndnr/encodebench/internal/core/bench"
)

// document is the serialized form of a result shared by json and yaml.
type document struct {
	RunID          string  `json:"run_id" yaml:"run_id"`
	StartedAt      string  `json:"started_at" yaml:"started_at"`
	Iterations     int     `json:"iterations" yaml:"iterations"`
	Input          string  `json:"input" yaml:"input"`
	Offset         int     `json:"offset" yaml:"offset"`
	Mode           string  `json:"mode" yaml:"mode"`
	Clock          string  `json:"clock" yaml:"clock"`
	ElapsedSeconds float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	BytesShifted   int64   `json:"bytes_shifted" yaml:"bytes_shifted"`
	Digest         string  `json:"digest" yaml:"digest"`
}

func newDocument(r *bench.Result) document {
	return document{
		RunID:          r.RunID,
		StartedAt:      r.StartedAt.UTC().Format(time.RFC3339Nano),
		Iterations:     r.Iterations,
		Input:          r.Input,
		Offset:         int(r.Offset),
		Mode:           string(r.Mode),
		Clock:          r.Clock,
		ElapsedSeconds: r.Seconds(),
		BytesShifted:   r.BytesShifted,
		Digest:         r.Digest,
	}
}
