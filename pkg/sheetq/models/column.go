package models

// ColumnValue is one cell from a column extraction.
type ColumnValue struct {
	// Row is the 1-based row the value came from.
	Row int `json:"_row"`
	// Value is the cell value, empty for absent cells.
	Value string `json:"value"`
}

// ColumnSlice is the result of the column query.
type ColumnSlice struct {
	Sheet string `json:"sheet"`
	// Column is the canonical header name of the resolved column.
	Column string `json:"column"`
	// Index is the resolved zero-based column index.
	Index   int           `json:"column_index"`
	Values  []ColumnValue `json:"values"`
	Showing int           `json:"showing"`
}
