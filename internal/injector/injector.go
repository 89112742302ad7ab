// Package injector prepends column-name and column-type header lines to
// dbgen table files.
package injector

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tordrt/tblheader/internal/logging"
	"github.com/tordrt/tblheader/internal/schema"
)

const (
	OpRead  = "read"
	OpWrite = "write"
)

// TableError reports an I/O failure on a single table file
type TableError struct {
	Table string
	Path  string
	Op    string
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// TableResult describes one rewritten file
type TableResult struct {
	Table        string
	Path         string
	OriginalSize int
	WrittenSize  int
}

// Result lists the tables processed by a run, in registry order
type Result struct {
	Tables []TableResult
}

// Injector rewrites table files in Dir
type Injector struct {
	// Dir holds the .tbl files. Defaults to the working directory.
	Dir string

	// KeepGoing attempts every table and returns all failures joined.
	// Otherwise the run stops at the first failure.
	KeepGoing bool

	// Atomic writes to a temporary file and renames it over the original.
	Atomic bool

	// DryRun reads every file but writes nothing.
	DryRun bool

	Logger logging.Logger
}

// New creates an injector for dir
func New(dir string, logger logging.Logger) *Injector {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Injector{Dir: dir, Logger: logger}
}

// Inject prepends the header block of every table in registry order.
// Files processed before a failure are left rewritten.
func (in *Injector) Inject(registry *schema.Registry) (*Result, error) {
	result := &Result{}
	var errs []error

	for _, table := range registry.Tables() {
		tr, err := in.injectTable(table)
		if err != nil {
			if !in.KeepGoing {
				return result, err
			}
			errs = append(errs, err)
			continue
		}
		result.Tables = append(result.Tables, *tr)
	}

	return result, errors.Join(errs...)
}

func (in *Injector) injectTable(table schema.Table) (*TableResult, error) {
	path := in.path(table)
	header := table.HeaderBlock()
	in.logger().Verbose("%s: %d columns -> %s", table.Name, len(table.Columns), path)

	original, err := readFile(path)
	if err != nil {
		return nil, &TableError{Table: table.Name, Path: path, Op: OpRead, Err: err}
	}

	content := make([]byte, 0, len(header)+len(original))
	content = append(content, header...)
	content = append(content, original...)

	tr := &TableResult{
		Table:        table.Name,
		Path:         path,
		OriginalSize: len(original),
		WrittenSize:  len(content),
	}

	if in.DryRun {
		in.logger().Info("would write %s (%d bytes)", path, len(content))
		return tr, nil
	}

	write := overwriteFile
	if in.Atomic {
		write = replaceFile
	}
	if err := write(path, content); err != nil {
		return nil, &TableError{Table: table.Name, Path: path, Op: OpWrite, Err: err}
	}

	in.logger().Verbose("wrote %s (%d bytes)", path, len(content))
	return tr, nil
}

func (in *Injector) path(table schema.Table) string {
	if in.Dir == "" {
		return table.FileName()
	}
	return filepath.Join(in.Dir, table.FileName())
}

func (in *Injector) logger() logging.Logger {
	if in.Logger == nil {
		return logging.NewNullLogger()
	}
	return in.Logger
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return io.ReadAll(file)
}

// overwriteFile truncates path and writes content. A failure part way
// leaves the file truncated.
func overwriteFile(path string, content []byte) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = file.Write(content)
	return err
}
