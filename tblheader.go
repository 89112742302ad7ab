// Package tblheader prepends column headers to the TPC-H table files
// generated by dbgen.
//
// dbgen writes eight pipe-delimited files (customer.tbl, lineitem.tbl,
// nation.tbl, orders.tbl, part.tbl, partsupp.tbl, region.tbl, supplier.tbl)
// without a header. Loaders that expect a column-name line and a column-type
// line can read them after InjectHeaders has rewritten each file as:
//
//	r_regionkey|r_name|r_comment
//	int|string|string
//	0|AFRICA|...
//
// # Quick Start
//
//	result, err := tblheader.InjectHeaders(&tblheader.Options{Dir: "data/sf1"})
//
// The rewrite is not idempotent: running it twice on the same files prepends
// a second header block.
package tblheader

import (
	"io"

	"github.com/tordrt/tblheader/internal/formatter"
	"github.com/tordrt/tblheader/internal/injector"
	"github.com/tordrt/tblheader/internal/logging"
	"github.com/tordrt/tblheader/internal/schema"
)

// Options configures a header injection run.
//
// The zero value processes all eight tables in the working directory, stops
// at the first failure and overwrites files in place.
type Options struct {
	// Dir holds the .tbl files. Empty means the working directory.
	Dir string

	// Tables restricts the run to the named tables. Registry order is kept.
	// Nil or empty processes every table.
	Tables []string

	// KeepGoing attempts every table even after a failure; all failures are
	// returned joined.
	KeepGoing bool

	// Atomic writes each file through a temporary file and a rename, so an
	// interrupted run leaves the original content in place.
	Atomic bool

	// DryRun reads every file and reports sizes without writing.
	DryRun bool

	// Logger receives progress messages. Nil discards them.
	Logger logging.Logger
}

// Registry returns the TPC-H table registry in processing order
func Registry() *schema.Registry {
	return schema.TPCH()
}

// InjectHeaders rewrites the selected table files with their header block.
//
// Returns an error if a table name is unknown or if reading or writing any
// file fails. The error names the offending path. Tables processed before a
// failure are not rolled back.
func InjectHeaders(opts *Options) (*injector.Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	registry, err := schema.TPCH().Select(opts.Tables)
	if err != nil {
		return nil, err
	}

	in := injector.New(opts.Dir, opts.Logger)
	in.KeepGoing = opts.KeepGoing
	in.Atomic = opts.Atomic
	in.DryRun = opts.DryRun

	return in.Inject(registry)
}

// FormatRegistry writes the selected tables of the registry to w in the
// given format: text, markdown, yaml or header.
func FormatRegistry(w io.Writer, format string, tables []string) error {
	registry, err := schema.TPCH().Select(tables)
	if err != nil {
		return err
	}

	f, err := formatter.New(format, w)
	if err != nil {
		return err
	}
	return f.Format(registry)
}
