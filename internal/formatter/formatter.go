// Package formatter renders the table registry for display.
package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/tblheader/internal/schema"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
	FormatHeader   = "header"
)

// Formatter writes a registry to its writer
type Formatter interface {
	Format(r *schema.Registry) error
}

// New returns the formatter for the named format
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextFormatter(w), nil
	case FormatMarkdown:
		return NewMarkdownFormatter(w), nil
	case FormatYAML:
		return NewYAMLFormatter(w), nil
	case FormatHeader:
		return NewHeaderFormatter(w), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be 'text', 'markdown', 'yaml' or 'header')", format)
	}
}
