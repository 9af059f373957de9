package models

import (
	"encoding/json"
	"fmt"
)

// Row is a single data row. Values is dense: Values[i] holds column i,
// trimmed after the last populated cell.
type Row struct {
	// Number is the 1-based row number.
	Number int `json:"_row"`
	// Values holds the cell values in column order.
	Values []string `json:"values"`
}

// Preview is the result of the headers query: the leading rows of a sheet.
type Preview struct {
	Sheet string `json:"sheet"`
	Rows  []Row  `json:"rows"`
}

// RowSlice is the result of the rows query. Headers come from the header
// row and label the columns of every returned row.
type RowSlice struct {
	Sheet   string
	Headers []string
	Rows    []Row
}

// MarshalJSON renders each row as a record keyed by header name, with the
// 1-based row number under "_row". Blank header names fall back to col_<i>.
func (s *RowSlice) MarshalJSON() ([]byte, error) {
	records := make([]map[string]interface{}, 0, len(s.Rows))
	for _, r := range s.Rows {
		rec := make(map[string]interface{}, len(s.Headers)+1)
		rec["_row"] = r.Number
		for i, h := range s.Headers {
			key := h
			if key == "" {
				key = fmt.Sprintf("col_%d", i)
			}
			v := ""
			if i < len(r.Values) {
				v = r.Values[i]
			}
			rec[key] = v
		}
		records = append(records, rec)
	}
	return json.Marshal(struct {
		Sheet   string                   `json:"sheet"`
		Headers []string                 `json:"headers"`
		Rows    []map[string]interface{} `json:"rows"`
		Showing int                      `json:"showing"`
	}{
		Sheet:   s.Sheet,
		Headers: s.Headers,
		Rows:    records,
		Showing: len(records),
	})
}
