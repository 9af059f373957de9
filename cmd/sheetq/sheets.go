package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sheetq/sheetq/pkg/sheetq"
	"github.com/sheetq/sheetq/pkg/sheetq/output"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <file>",
	Short: "List all sheets with their dimensions",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheets,
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}

func runSheets(cmd *cobra.Command, args []string) error {
	wb, err := sheetq.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	list, err := wb.Sheets()
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file":   wb.Path(),
		"sheets": len(list.Sheets),
	}).Debug("inspected workbook")

	if jsonOutput {
		data, err := output.ToJSON(list, true)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Print(output.SheetListTable(list).Render())
	return nil
}
