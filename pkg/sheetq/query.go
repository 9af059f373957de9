package sheetq

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheetq/sheetq/pkg/sheetq/models"
)

// Sheets enumerates every sheet with its dimensions. Each sheet costs one
// full streaming pass; the row count is the highest populated row and the
// column count the widest populated row.
func (w *Workbook) Sheets() (*models.SheetList, error) {
	names := w.SheetNames()
	list := &models.SheetList{
		File:   w.path,
		Sheets: make([]models.SheetInfo, 0, len(names)),
	}
	for i, name := range names {
		rows, cols, err := w.sheetDimensions(name)
		if err != nil {
			return nil, err
		}
		list.Sheets = append(list.Sheets, models.SheetInfo{
			Index:   i,
			Name:    name,
			Rows:    rows,
			Columns: cols,
		})
	}
	return list, nil
}

// Preview returns the first n rows of the target sheet, in file order.
// A sheet with fewer than n rows yields only what it has.
func (w *Workbook) Preview(sheet string, n int) (*models.Preview, error) {
	if n < 1 {
		return nil, &ArgumentError{Name: "rows", Reason: "must be >= 1"}
	}
	name, err := w.ResolveSheet(sheet)
	if err != nil {
		return nil, err
	}
	_, byIndex, maxSeen, more, err := w.scanSpan(name, 0, 1, n)
	if err != nil {
		return nil, err
	}
	return &models.Preview{
		Sheet: name,
		Rows:  materializeRows(byIndex, 1, n, maxSeen, more),
	}, nil
}

// Rows returns a contiguous slice of rows. When rng is nil the slice
// starts just after the header row; otherwise it starts at rng.Start,
// shifted by opts.Offset and capped by both rng.End and opts.Limit.
// Spans beyond the populated rows clamp to what exists.
func (w *Workbook) Rows(sheet string, rng *RowRange, opts QueryOptions) (*models.RowSlice, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	name, err := w.ResolveSheet(sheet)
	if err != nil {
		return nil, err
	}

	var start, end int
	if rng != nil {
		start = rng.Start + opts.Offset
		end = rng.End
		if end-start+1 > opts.Limit {
			end = start + opts.Limit - 1
		}
	} else {
		start = opts.HeaderRow + 1 + opts.Offset
		end = start + opts.Limit - 1
	}

	headers, byIndex, maxSeen, more, err := w.scanSpan(name, opts.HeaderRow, start, end)
	if err != nil {
		return nil, err
	}
	return &models.RowSlice{
		Sheet:   name,
		Headers: headers,
		Rows:    materializeRows(byIndex, start, end, maxSeen, more),
	}, nil
}

// Column resolves ref against the header row and returns up to opts.Limit
// values from that column, starting opts.Offset rows after the header.
// An offset past the end of the sheet yields zero values, not an error.
func (w *Workbook) Column(sheet, ref string, opts QueryOptions) (*models.ColumnSlice, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	name, err := w.ResolveSheet(sheet)
	if err != nil {
		return nil, err
	}

	start := opts.HeaderRow + 1 + opts.Offset
	end := start + opts.Limit - 1
	headers, byIndex, maxSeen, more, err := w.scanSpan(name, opts.HeaderRow, start, end)
	if err != nil {
		return nil, err
	}

	idx, canonical, err := resolveColumn(ref, headers)
	if err != nil {
		return nil, err
	}

	rows := materializeRows(byIndex, start, end, maxSeen, more)
	values := make([]models.ColumnValue, 0, len(rows))
	for _, r := range rows {
		v := ""
		if idx < len(r.Values) {
			v = r.Values[idx]
		}
		values = append(values, models.ColumnValue{Row: r.Number, Value: v})
	}
	return &models.ColumnSlice{
		Sheet:   name,
		Column:  canonical,
		Index:   idx,
		Values:  values,
		Showing: len(values),
	}, nil
}

// resolveColumn maps a column reference to a zero-based index. Header
// names match case-sensitively; a reference that matches no header and
// parses as an integer is treated as a positional index.
func resolveColumn(ref string, headers []string) (int, string, error) {
	for i, h := range headers {
		if h == ref {
			return i, h, nil
		}
	}
	if idx, err := strconv.Atoi(ref); err == nil && idx >= 0 && idx < len(headers) {
		return idx, headers[idx], nil
	}
	return 0, "", &ColumnNotFoundError{Requested: ref, Available: headers}
}

// scanSpan makes one forward pass over a sheet, capturing the header row
// (headerRow 0 skips it) and the populated rows within [start, end].
// more reports whether populated rows exist past end, which decides
// whether trailing gaps inside the span count as real empty rows.
func (w *Workbook) scanSpan(sheet string, headerRow, start, end int) (headers []string, byIndex map[int][]string, maxSeen int, more bool, err error) {
	stop := end
	if headerRow > stop {
		stop = headerRow
	}
	byIndex = make(map[int][]string)
	for row := range w.reader.ReadRows(sheet) {
		if row.Error != nil {
			return nil, nil, 0, false, errors.Wrapf(row.Error, "read sheet %q", sheet)
		}
		if headerRow > 0 && row.Index == headerRow {
			headers = denseValues(row)
		}
		if row.Index >= start && row.Index <= end {
			byIndex[row.Index] = denseValues(row)
			maxSeen = row.Index
		}
		if row.Index > end {
			more = true
		}
		if row.Index > stop {
			break
		}
	}
	return headers, byIndex, maxSeen, more, nil
}

// materializeRows turns the scanned span into an ordered row slice, filling
// gaps between populated rows with empty rows and clamping the tail to the
// last row known to exist.
func materializeRows(byIndex map[int][]string, start, end, maxSeen int, more bool) []models.Row {
	last := maxSeen
	if more {
		last = end
	}
	if last < start {
		return nil
	}
	out := make([]models.Row, 0, last-start+1)
	for i := start; i <= last; i++ {
		out = append(out, models.Row{Number: i, Values: byIndex[i]})
	}
	return out
}

func (w *Workbook) sheetDimensions(sheet string) (int, int, error) {
	maxRow, maxCol := 0, 0
	for row := range w.reader.ReadRows(sheet) {
		if row.Error != nil {
			return 0, 0, errors.Wrapf(row.Error, "read sheet %q", sheet)
		}
		if row.Index > maxRow {
			maxRow = row.Index
		}
		for _, c := range row.Cells {
			if n := c.ColumnIndex() + 1; n > maxCol {
				maxCol = n
			}
		}
	}
	return maxRow, maxCol, nil
}
