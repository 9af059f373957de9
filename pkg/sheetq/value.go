package sheetq

import "github.com/thedatashed/xlsxreader"

// denseValues converts a streamed row into a dense value slice where
// index i holds column i. The reader omits empty cells, so gaps are
// filled from each cell's column coordinate. Formula cells carry their
// cached value and merged ranges only populate their top-left cell;
// both are pass-through properties of the format.
func denseValues(row xlsxreader.Row) []string {
	width := 0
	for _, c := range row.Cells {
		if n := c.ColumnIndex() + 1; n > width {
			width = n
		}
	}
	if width == 0 {
		return nil
	}
	out := make([]string, width)
	for _, c := range row.Cells {
		out[c.ColumnIndex()] = c.Value
	}
	return out
}
