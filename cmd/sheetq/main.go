// Package main provides the CLI entry point for sheetq.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sheetq/sheetq/pkg/presenter"
)

var (
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetq",
	Short: "Inspect xlsx workbooks from the command line",
	Long: `sheetq answers four read-only queries against an xlsx workbook:
list sheets with their dimensions, preview the leading rows of a sheet,
extract a contiguous row range, and extract a single column by header
name or positional index.

Rows are streamed forward-only, so memory stays bounded regardless of
workbook size. Legacy binary .xls files are not supported and must be
converted to .xlsx first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output a structured JSON document instead of a table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		presenter.Error("%v", err)
		os.Exit(1)
	}
}
