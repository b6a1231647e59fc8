package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/yndnr/encodebench/internal/core/bench"
)

// TableFormatter formats a result as a two-column FIELD/VALUE table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats r as a table.
func (f *TableFormatter) Format(w io.Writer, r *bench.Result) error {
	return resultTable(r).RenderWithOptions(w, f.NoHeaders)
}

func resultTable(r *bench.Result) *Table {
	t := &Table{}
	t.SetHeaders("FIELD", "VALUE")
	t.AddRow("RUN ID", r.RunID)
	t.AddRow("STARTED", r.StartedAt.UTC().Format(time.RFC3339))
	t.AddRow("ITERATIONS", strconv.Itoa(r.Iterations))
	t.AddRow("INPUT", strconv.Quote(r.Input))
	t.AddRow("OFFSET", strconv.Itoa(int(r.Offset)))
	t.AddRow("MODE", string(r.Mode))
	t.AddRow("CLOCK", r.Clock)
	t.AddRow("ELAPSED", fmt.Sprintf("%.6fs", r.Seconds()))
	t.AddRow("BYTES", strconv.FormatInt(r.BytesShifted, 10))
	t.AddRow("DIGEST", r.Digest)
	return t
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		writeRow(tw, t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(tw, row)
	}

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, cell)
	}
	io.WriteString(w, "\n")
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
