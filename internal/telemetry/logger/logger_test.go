package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// jsonLogger returns a JSON logger writing to the returned buffer.
func jsonLogger(t *testing.T, level string) (Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	l, err := New(Config{Level: level, Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l, &buf
}

// records decodes one JSON object per line.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("invalid JSON record %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"trace", 0, true},
		{"fatal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLevel) {
					t.Errorf("ParseLevel(%q) error = %v, want ErrUnknownLevel", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Config{Format: "logfmt"}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("New(logfmt) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := New(Config{Level: "trace"}); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("New(trace) error = %v, want ErrUnknownLevel", err)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"debug", []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"info", []string{"INFO", "WARN", "ERROR"}},
		{"", []string{"WARN", "ERROR"}},
		{"error", []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			l, buf := jsonLogger(t, tt.level)
			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")

			recs := records(t, buf)
			if len(recs) != len(tt.want) {
				t.Fatalf("got %d records, want %d:\n%s", len(recs), len(tt.want), buf)
			}
			for i, rec := range recs {
				if rec["level"] != tt.want[i] {
					t.Errorf("record %d level = %v, want %s", i, rec["level"], tt.want[i])
				}
			}
		})
	}
}

func TestNew_TextFormat(t *testing.T) {
	for _, format := range []string{"text", "console", ""} {
		var buf bytes.Buffer
		l, err := New(Config{Level: "info", Format: format, Output: &buf})
		if err != nil {
			t.Fatalf("New(%q) error = %v", format, err)
		}

		l.Info("benchmark finished", "mode", "alloc")

		out := buf.String()
		if !strings.Contains(out, "msg=\"benchmark finished\"") || !strings.Contains(out, "mode=alloc") {
			t.Errorf("format %q output = %q", format, out)
		}
	}
}

func TestLogger_With(t *testing.T) {
	l, buf := jsonLogger(t, "info")

	child := l.With("mode", "scoped")
	child.Info("child")
	l.Info("parent")

	recs := records(t, buf)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0]["mode"] != "scoped" {
		t.Errorf("child record mode = %v, want scoped", recs[0]["mode"])
	}
	if _, ok := recs[1]["mode"]; ok {
		t.Error("With must not modify the parent logger")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Level)
	}
	if cfg.Output == nil {
		t.Error("Output should default to stderr")
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	l, buf := jsonLogger(t, "info")
	SetDefault(l)
	Default().Info("via default")

	if recs := records(t, buf); len(recs) != 1 || recs[0]["msg"] != "via default" {
		t.Errorf("default logger not replaced, got %q", buf)
	}

	SetDefault(nil)
	if Default() != l {
		t.Error("SetDefault(nil) should keep the current logger")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("discarded")
	l.With("k", "v").Info("discarded")
}
