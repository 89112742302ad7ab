package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tordrt/tblheader"
	"github.com/tordrt/tblheader/internal/formatter"
	"github.com/tordrt/tblheader/internal/logging"
)

var (
	dir       string
	tables    string
	keepGoing bool
	atomic    bool
	dryRun    bool
	verbose   bool
	format    string
)

var rootCmd = &cobra.Command{
	Use:           "tblheader",
	Short:         "Prepend column headers to TPC-H .tbl files",
	Long:          `tblheader rewrites the eight dbgen table files (customer.tbl ... supplier.tbl) in place, prepending a line of column names and a line of column types.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the table registry",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tables, "tables", "t", "", "Specific tables (comma-separated, optional)")

	rootCmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory containing the .tbl files (default: working directory)")
	rootCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Process remaining tables after a failure")
	rootCmd.Flags().BoolVar(&atomic, "atomic", false, "Write through a temporary file and rename")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Read files and report without writing")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every table")

	schemaCmd.Flags().StringVarP(&format, "format", "f", formatter.FormatText, "Output format: text, markdown, yaml or header")
	rootCmd.AddCommand(schemaCmd)
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)

	result, err := tblheader.InjectHeaders(&tblheader.Options{
		Dir:       dir,
		Tables:    parseTableList(tables),
		KeepGoing: keepGoing,
		Atomic:    atomic,
		DryRun:    dryRun,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Verbose("processed %d tables", len(result.Tables))
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	if err := tblheader.FormatRegistry(cmd.OutOrStdout(), format, parseTableList(tables)); err != nil {
		return fmt.Errorf("failed to format registry: %w", err)
	}
	return nil
}

func parseTableList(s string) []string {
	if s == "" {
		return nil
	}
	tableList := strings.Split(s, ",")
	for i, t := range tableList {
		tableList[i] = strings.TrimSpace(t)
	}
	return tableList
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.NewConsoleLogger(false).Error("%v", err)
		os.Exit(1)
	}
}
