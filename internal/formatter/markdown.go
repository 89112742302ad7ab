package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/tblheader/internal/schema"
)

// MarkdownFormatter formats the registry as markdown
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format writes the registry in markdown format
func (f *MarkdownFormatter) Format(r *schema.Registry) error {
	_, _ = fmt.Fprintln(f.writer, "# TPC-H Table Headers")
	_, _ = fmt.Fprintln(f.writer)

	for _, table := range r.Tables() {
		if err := f.formatTable(table); err != nil {
			return err
		}
	}
	return nil
}

func (f *MarkdownFormatter) formatTable(table schema.Table) error {
	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", table.Name)
	_, _ = fmt.Fprintf(f.writer, "File: `%s`\n\n", table.FileName())

	_, _ = fmt.Fprintln(f.writer, "### Columns")
	_, _ = fmt.Fprintln(f.writer)

	for _, col := range table.Columns {
		_, _ = fmt.Fprintf(f.writer, "- **%s:** %s\n", col.Name, col.Type)
	}
	_, err := fmt.Fprintln(f.writer)
	return err
}
