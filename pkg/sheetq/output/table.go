package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sheetq/sheetq/pkg/sheetq/models"
)

// Table is a markdown-style table with width-padded cells and an optional
// footer line.
type Table struct {
	Columns []string
	Rows    [][]string
	Footer  string
}

// Render produces the table as a string, one pipe-delimited line per row,
// with every column padded to its widest cell.
func (t *Table) Render() string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(escapeCell(c))
	}
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = escapeCell(v)
			if i < len(widths) && len(cells[i]) > widths[i] {
				widths[i] = len(cells[i])
			}
		}
		rows = append(rows, cells)
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, v := range cells {
			w := len(v)
			if i < len(widths) {
				w = widths[i]
			}
			b.WriteString(" " + v + strings.Repeat(" ", w-len(v)) + " |")
		}
		b.WriteString("\n")
	}

	writeRow(t.Columns)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2) + "|")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}

	if t.Footer != "" {
		b.WriteString("\n" + t.Footer + "\n")
	}
	return b.String()
}

// escapeCell keeps cell content from breaking the table markup.
func escapeCell(v string) string {
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", " ")
	return v
}

// SheetListTable renders the sheets query.
func SheetListTable(l *models.SheetList) *Table {
	t := &Table{Columns: []string{"#", "Sheet Name", "Rows", "Columns"}}
	for _, s := range l.Sheets {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(s.Index + 1),
			s.Name,
			strconv.Itoa(s.Rows),
			strconv.Itoa(s.Columns),
		})
	}
	return t
}

// PreviewTable renders the headers query with positional column labels.
func PreviewTable(p *models.Preview) *Table {
	width := 0
	for _, r := range p.Rows {
		if len(r.Values) > width {
			width = len(r.Values)
		}
	}
	t := &Table{
		Columns: make([]string, 0, width+1),
		Footer:  fmt.Sprintf("Sheet: %s", p.Sheet),
	}
	t.Columns = append(t.Columns, "Row")
	for i := 1; i <= width; i++ {
		t.Columns = append(t.Columns, fmt.Sprintf("Col %d", i))
	}
	for _, r := range p.Rows {
		t.Rows = append(t.Rows, append([]string{strconv.Itoa(r.Number)}, padValues(r.Values, width)...))
	}
	return t
}

// RowSliceTable renders the rows query with header names as column labels.
func RowSliceTable(s *models.RowSlice) *Table {
	width := len(s.Headers)
	for _, r := range s.Rows {
		if len(r.Values) > width {
			width = len(r.Values)
		}
	}
	t := &Table{
		Columns: make([]string, 0, width+1),
		Footer:  fmt.Sprintf("Showing %d rows. Sheet: %s", len(s.Rows), s.Sheet),
	}
	t.Columns = append(t.Columns, "Row")
	for i := 0; i < width; i++ {
		name := ""
		if i < len(s.Headers) {
			name = s.Headers[i]
		}
		if name == "" {
			name = fmt.Sprintf("Col %d", i+1)
		}
		t.Columns = append(t.Columns, name)
	}
	for _, r := range s.Rows {
		t.Rows = append(t.Rows, append([]string{strconv.Itoa(r.Number)}, padValues(r.Values, width)...))
	}
	return t
}

// ColumnSliceTable renders the column query.
func ColumnSliceTable(c *models.ColumnSlice) *Table {
	t := &Table{
		Columns: []string{"Row", c.Column},
		Footer: fmt.Sprintf("Column %q (index %d). Showing %d values. Sheet: %s",
			c.Column, c.Index, c.Showing, c.Sheet),
	}
	for _, v := range c.Values {
		t.Rows = append(t.Rows, []string{strconv.Itoa(v.Row), v.Value})
	}
	return t
}

func padValues(values []string, width int) []string {
	if len(values) >= width {
		return values
	}
	out := make([]string, width)
	copy(out, values)
	return out
}
