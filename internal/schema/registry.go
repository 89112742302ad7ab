package schema

import "fmt"

// Registry is an ordered, read-only set of tables
type Registry struct {
	tables []Table
	index  map[string]int
}

// NewRegistry creates a registry that keeps tables in the given order
func NewRegistry(tables ...Table) (*Registry, error) {
	r := &Registry{
		tables: make([]Table, 0, len(tables)),
		index:  make(map[string]int, len(tables)),
	}
	for _, t := range tables {
		if t.Name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := r.index[t.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTable, t.Name)
		}
		r.index[t.Name] = len(r.tables)
		r.tables = append(r.tables, t)
	}
	return r, nil
}

// Tables returns a copy of the registered tables in registry order
func (r *Registry) Tables() []Table {
	out := make([]Table, len(r.tables))
	copy(out, r.tables)
	return out
}

// Len returns the number of tables
func (r *Registry) Len() int {
	return len(r.tables)
}

// Names returns the table names in registry order
func (r *Registry) Names() []string {
	names := make([]string, len(r.tables))
	for i, t := range r.tables {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the table with the given name
func (r *Registry) Lookup(name string) (Table, bool) {
	i, ok := r.index[name]
	if !ok {
		return Table{}, false
	}
	return r.tables[i], true
}

// Select returns a registry holding only the named tables. Registry order
// is kept regardless of the order of names. An empty list selects every table.
func (r *Registry) Select(names []string) (*Registry, error) {
	if len(names) == 0 {
		return r, nil
	}

	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := r.index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
		}
		want[name] = true
	}

	var selected []Table
	for _, t := range r.tables {
		if want[t.Name] {
			selected = append(selected, t)
		}
	}
	return NewRegistry(selected...)
}
