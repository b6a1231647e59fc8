package output

import (
	"encoding/json"
	"io"

	"github.com/yndnr/encodebench/internal/core/bench"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// Format formats r as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, r *bench.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newDocument(r))
}
