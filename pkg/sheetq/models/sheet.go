// Package models defines the result documents for workbook queries.
package models

// SheetInfo describes one sheet's name and dimensions.
type SheetInfo struct {
	// Index is the sheet's zero-based position in the workbook.
	Index int `json:"index"`
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Rows is the highest populated row number.
	Rows int `json:"rows"`
	// Columns is the width of the widest populated row.
	Columns int `json:"columns"`
}

// SheetList is the result of the sheets query.
type SheetList struct {
	File   string      `json:"file"`
	Sheets []SheetInfo `json:"sheets"`
}
