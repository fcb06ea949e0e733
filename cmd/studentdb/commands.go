package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/studentdb/internal/exchange"
	"github.com/jeanpaul/studentdb/internal/student"
)

var (
	exportFormat string
	exportOutput string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all student records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), openStore().List())
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the records as json, yaml, xlsx or a Markdown table",
	Long: `Write the records as json, yaml, xlsx or a Markdown table.

The format defaults to the extension of --output, or json when writing to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import PATTERN...",
	Short: "Add records from json, yaml or xlsx files",
	Long: `Add records from json, yaml or xlsx files.

Patterns may use ** to match nested directories, e.g. "classes/**/*.xlsx".
Records whose id already exists are skipped. Records without an id get a
generated one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
	name := exportFormat
	if name == "" {
		name = string(exchange.FormatJSON)
		if ext := filepath.Ext(exportOutput); ext != "" {
			name = ext
		}
	}
	format, err := exchange.ParseFormat(name)
	if err != nil {
		return err
	}
	if format == exchange.FormatXLSX && exportOutput == "" {
		return fmt.Errorf("xlsx export needs --output")
	}

	records := openStore().Records()

	if exportOutput == "" {
		err = exchange.Export(cmd.OutOrStdout(), records, format)
	} else {
		err = writeExport(exportOutput, records, format)
	}
	if err != nil {
		return err
	}
	logger.Info("Exported records",
		zap.String("format", string(format)),
		zap.String("output", exportOutput),
		zap.Int("count", len(records)))
	return nil
}

// writeExport writes records to path. On any failure, including the final
// close, the partial file is removed.
func writeExport(path string, records []student.Record, format exchange.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return exchange.Export(f, records, format)
}

func runImport(cmd *cobra.Command, args []string) error {
	st := openStore()

	sum, err := exchange.Import(st, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d record(s) from %d file(s).\n", sum.Added, len(sum.Files))
	if len(sum.Duplicates) > 0 {
		fmt.Fprintf(out, "Skipped %d duplicate id(s): %s\n", len(sum.Duplicates), strings.Join(sum.Duplicates, ", "))
	}
	logger.Info("Imported records",
		zap.Strings("files", sum.Files),
		zap.Int("added", sum.Added),
		zap.Int("duplicates", len(sum.Duplicates)))
	return nil
}
