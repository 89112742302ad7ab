package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/tblheader/internal/schema"
	"gopkg.in/yaml.v3"
)

type yamlColumn struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type yamlTable struct {
	Name    string       `yaml:"name"`
	File    string       `yaml:"file"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlRegistry struct {
	Tables []yamlTable `yaml:"tables"`
}

// YAMLFormatter formats the registry as a YAML document
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the registry as YAML
func (f *YAMLFormatter) Format(r *schema.Registry) error {
	doc := yamlRegistry{}
	for _, table := range r.Tables() {
		yt := yamlTable{Name: table.Name, File: table.FileName()}
		for _, col := range table.Columns {
			yt.Columns = append(yt.Columns, yamlColumn{Name: col.Name, Type: string(col.Type)})
		}
		doc.Tables = append(doc.Tables, yt)
	}

	enc := yaml.NewEncoder(f.writer)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
