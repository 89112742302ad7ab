package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/tblheader/internal/schema"
)

// TextFormatter formats the registry as compact text
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes the registry in compact text format
func (f *TextFormatter) Format(r *schema.Registry) error {
	for i, table := range r.Tables() {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer) // Blank line between tables
		}

		if err := f.formatTable(table); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatTable(table schema.Table) error {
	_, err := fmt.Fprintf(f.writer, "TABLE %s (%s)\n", table.Name, table.FileName())
	if err != nil {
		return err
	}

	for _, col := range table.Columns {
		if _, err := fmt.Fprintf(f.writer, "  %s: %s\n", col.Name, col.Type); err != nil {
			return err
		}
	}
	return nil
}
