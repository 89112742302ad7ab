package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates fields in dbgen output and in the header lines.
const Delimiter = "|"

// FileExtension is the suffix dbgen gives every table file.
const FileExtension = ".tbl"

var (
	ErrEmptyName      = errors.New("table name is empty")
	ErrArityMismatch  = errors.New("column names and types differ in length")
	ErrUnknownType    = errors.New("unknown column type")
	ErrDuplicateTable = errors.New("duplicate table")
	ErrUnknownTable   = errors.New("unknown table")
)

// ColumnType is the declared type of a column
type ColumnType string

const (
	TypeInt    ColumnType = "int"
	TypeFloat  ColumnType = "float"
	TypeString ColumnType = "string"
)

// Valid reports whether t is part of the type vocabulary
func (t ColumnType) Valid() bool {
	switch t {
	case TypeInt, TypeFloat, TypeString:
		return true
	}
	return false
}

// Column represents a table column
type Column struct {
	Name string
	Type ColumnType
}

// Table represents a table whose data lives in <Name>.tbl
type Table struct {
	Name    string
	Columns []Column
}

// NewTable builds a table from parallel name and type sequences.
func NewTable(name string, names []string, types []ColumnType) (Table, error) {
	if name == "" {
		return Table{}, ErrEmptyName
	}
	if len(names) != len(types) {
		return Table{}, fmt.Errorf("table %s: %w (%d names, %d types)", name, ErrArityMismatch, len(names), len(types))
	}

	columns := make([]Column, len(names))
	for i := range names {
		if !types[i].Valid() {
			return Table{}, fmt.Errorf("table %s, column %s: %w %q", name, names[i], ErrUnknownType, types[i])
		}
		columns[i] = Column{Name: names[i], Type: types[i]}
	}

	return Table{Name: name, Columns: columns}, nil
}

// MustTable is like NewTable but panics on error. Only for static tables.
func MustTable(name string, names []string, types []ColumnType) Table {
	t, err := NewTable(name, names, types)
	if err != nil {
		panic(err)
	}
	return t
}

// ColumnNames returns the column names in declared order
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// ColumnTypes returns the column types in declared order
func (t Table) ColumnTypes() []string {
	types := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		types[i] = string(col.Type)
	}
	return types
}

// FileName returns the name of the table's data file
func (t Table) FileName() string {
	return t.Name + FileExtension
}

// HeaderBlock returns the names line followed by the types line, each
// terminated by a newline.
func (t Table) HeaderBlock() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.ColumnNames(), Delimiter))
	b.WriteString("\n")
	b.WriteString(strings.Join(t.ColumnTypes(), Delimiter))
	b.WriteString("\n")
	return b.String()
}
