package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/encodebench/internal/core/bench"
)

// YAMLFormatter formats results as YAML.
type YAMLFormatter struct{}

// Format formats r as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, r *bench.Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newDocument(r)); err != nil {
		return err
	}
	return encoder.Close()
}
