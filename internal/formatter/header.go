package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/tblheader/internal/schema"
)

// HeaderFormatter writes the exact header block each file would receive
type HeaderFormatter struct {
	writer io.Writer
}

// NewHeaderFormatter creates a new header formatter
func NewHeaderFormatter(w io.Writer) *HeaderFormatter {
	return &HeaderFormatter{writer: w}
}

// Format writes a "==> file <==" line followed by the header block per table
func (f *HeaderFormatter) Format(r *schema.Registry) error {
	for i, table := range r.Tables() {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer)
		}
		if _, err := fmt.Fprintf(f.writer, "==> %s <==\n%s", table.FileName(), table.HeaderBlock()); err != nil {
			return err
		}
	}
	return nil
}
