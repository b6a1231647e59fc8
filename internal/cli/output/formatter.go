package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yndnr/encodebench/internal/core/bench"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported format.
var ErrUnknownFormat = errors.New("output: unknown format")

// Format represents the output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Formatter writes a result in one format.
type Formatter interface {
	Format(w io.Writer, r *bench.Result) error
}

// NewFormatter creates a formatter for the given format.
// Unknown formats fall back to text.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatTable:
		return &TableFormatter{}
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TextFormatter{}
	}
}

// TextFormatter writes the report line only.
type TextFormatter struct{}

// Format writes "Program finished in X.XXXXXX seconds".
func (f *TextFormatter) Format(w io.Writer, r *bench.Result) error {
	return bench.WriteReport(w, r)
}
