package logger

import (
	"context"
	"testing"
)

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("FromContext without a logger should return Default()")
	}

	l := Nop()
	if FromContext(WithLogger(context.Background(), l)) != l {
		t.Error("FromContext should return the stored logger")
	}
}

func TestRunIDFromContext(t *testing.T) {
	if got := RunIDFromContext(context.Background()); got != "" {
		t.Errorf("RunIDFromContext() = %q, want empty", got)
	}

	ctx := WithRunID(context.Background(), "01J9Z7Q3R8K4M2N6P0S5T1V3W7")
	if got := RunIDFromContext(ctx); got != "01J9Z7Q3R8K4M2N6P0S5T1V3W7" {
		t.Errorf("RunIDFromContext() = %q", got)
	}
}

func TestL(t *testing.T) {
	tests := []struct {
		name  string
		runID string
	}{
		{"tagged", "run-1"},
		{"untagged", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := jsonLogger(t, "info")

			ctx := WithLogger(context.Background(), l)
			if tt.runID != "" {
				ctx = WithRunID(ctx, tt.runID)
			}
			L(ctx).Info("benchmark finished")

			recs := records(t, buf)
			if len(recs) != 1 {
				t.Fatalf("got %d records, want 1", len(recs))
			}
			id, ok := recs[0]["run_id"]
			if tt.runID == "" {
				if ok {
					t.Errorf("run_id = %v, want absent", id)
				}
				return
			}
			if id != tt.runID {
				t.Errorf("run_id = %v, want %q", id, tt.runID)
			}
		})
	}
}
