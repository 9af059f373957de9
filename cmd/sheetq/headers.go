package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sheetq/sheetq/pkg/presenter"
	"github.com/sheetq/sheetq/pkg/sheetq"
	"github.com/sheetq/sheetq/pkg/sheetq/output"
)

var (
	headersSheet string
	headersRows  int
)

var headersCmd = &cobra.Command{
	Use:   "headers <file>",
	Short: "Preview the leading rows of a sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeaders,
}

func init() {
	headersCmd.Flags().StringVar(&headersSheet, "sheet", "", "Sheet name (case-insensitive, default: first sheet)")
	headersCmd.Flags().IntVar(&headersRows, "rows", 1, "Number of rows to preview")
	rootCmd.AddCommand(headersCmd)
}

func runHeaders(cmd *cobra.Command, args []string) error {
	wb, err := sheetq.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	preview, err := wb.Preview(headersSheet, headersRows)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"sheet": preview.Sheet,
		"rows":  len(preview.Rows),
	}).Debug("previewed sheet")

	if jsonOutput {
		data, err := output.ToJSON(preview, true)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	if len(preview.Rows) == 0 {
		presenter.Warning("Sheet %q is empty.", preview.Sheet)
		return nil
	}
	fmt.Print(output.PreviewTable(preview).Render())
	return nil
}
