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
	columnSheet     string
	columnLimit     int
	columnOffset    int
	columnHeaderRow int
)

var columnCmd = &cobra.Command{
	Use:   "column <file> <name-or-index>",
	Short: "Extract a single column's values",
	Long: `Extract one column from a sheet. The column is referenced by its
header name (case-sensitive) or by a zero-based positional index.
Values start just after the header row, shifted by --offset and capped
by --limit.`,
	Args: cobra.ExactArgs(2),
	RunE: runColumn,
}

func init() {
	columnCmd.Flags().StringVar(&columnSheet, "sheet", "", "Sheet name (case-insensitive, default: first sheet)")
	columnCmd.Flags().IntVar(&columnLimit, "limit", 50, "Max values to return")
	columnCmd.Flags().IntVar(&columnOffset, "offset", 0, "Rows to skip after the header row")
	columnCmd.Flags().IntVar(&columnHeaderRow, "header-row", 1, "Row containing the column headers")
	rootCmd.AddCommand(columnCmd)
}

func runColumn(cmd *cobra.Command, args []string) error {
	wb, err := sheetq.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	slice, err := wb.Column(columnSheet, args[1], sheetq.QueryOptions{
		Limit:     columnLimit,
		Offset:    columnOffset,
		HeaderRow: columnHeaderRow,
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"sheet":  slice.Sheet,
		"column": slice.Column,
		"values": slice.Showing,
	}).Debug("extracted column")

	if jsonOutput {
		data, err := output.ToJSON(slice, true)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	if slice.Showing == 0 {
		presenter.Warning("No data rows found.")
		return nil
	}
	fmt.Print(output.ColumnSliceTable(slice).Render())
	return nil
}
