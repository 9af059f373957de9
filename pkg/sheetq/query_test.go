package sheetq

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSheets(t *testing.T) {
	wb := openFixture(t)

	list, err := wb.Sheets()
	require.NoError(t, err)
	require.Len(t, list.Sheets, 3)

	assert.Equal(t, "Sales", list.Sheets[0].Name)
	assert.Equal(t, 13, list.Sheets[0].Rows)
	assert.Equal(t, 6, list.Sheets[0].Columns)

	assert.Equal(t, "Returns", list.Sheets[1].Name)
	assert.Equal(t, 6, list.Sheets[1].Rows)
	assert.Equal(t, 4, list.Sheets[1].Columns)

	assert.Equal(t, "Empty", list.Sheets[2].Name)
	assert.Equal(t, 0, list.Sheets[2].Rows)
	assert.Equal(t, 0, list.Sheets[2].Columns)
}

func TestPreviewDefaultsToFirstSheet(t *testing.T) {
	wb := openFixture(t)

	p, err := wb.Preview("", 1)
	require.NoError(t, err)
	assert.Equal(t, "Sales", p.Sheet)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, 1, p.Rows[0].Number)
	assert.Equal(t, []string{"ID", "Name", "Email", "Status", "Amount", "Region"}, p.Rows[0].Values)
}

func TestPreviewClampsToRowCount(t *testing.T) {
	wb := openFixture(t)

	p, err := wb.Preview("Returns", 100)
	require.NoError(t, err)
	assert.Len(t, p.Rows, 6)
	for i, r := range p.Rows {
		assert.Equal(t, i+1, r.Number)
	}
}

func TestPreviewEmptySheet(t *testing.T) {
	wb := openFixture(t)

	p, err := wb.Preview("Empty", 3)
	require.NoError(t, err)
	assert.Empty(t, p.Rows)
}

func TestPreviewRejectsNonPositiveRows(t *testing.T) {
	wb := openFixture(t)

	_, err := wb.Preview("Sales", 0)
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "rows", argErr.Name)
}

func TestRowsRange(t *testing.T) {
	wb := openFixture(t)

	slice, err := wb.Rows("Returns", &RowRange{Start: 2, End: 6}, DefaultQueryOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Order", "Reason", "Status", "Refund"}, slice.Headers)
	require.Len(t, slice.Rows, 5)
	assert.Equal(t, 2, slice.Rows[0].Number)
	assert.Equal(t, 6, slice.Rows[4].Number)
	assert.Equal(t, "1001", slice.Rows[0].Values[0])
	assert.Equal(t, "refunded", slice.Rows[0].Values[2])
}

func TestRowsRangeBeyondEndClamps(t *testing.T) {
	wb := openFixture(t)

	slice, err := wb.Rows("Sales", &RowRange{Start: 10, End: 40}, DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, slice.Rows, 4)
	assert.Equal(t, 10, slice.Rows[0].Number)
	assert.Equal(t, 13, slice.Rows[3].Number)
}

func TestRowsRangeFullyOutOfBounds(t *testing.T) {
	wb := openFixture(t)

	slice, err := wb.Rows("Returns", &RowRange{Start: 50, End: 60}, DefaultQueryOptions())
	require.NoError(t, err)
	assert.Empty(t, slice.Rows)
}

func TestRowsLimitCapsRange(t *testing.T) {
	wb := openFixture(t)

	opts := DefaultQueryOptions()
	opts.Limit = 3
	slice, err := wb.Rows("Sales", &RowRange{Start: 2, End: 13}, opts)
	require.NoError(t, err)
	require.Len(t, slice.Rows, 3)
	assert.Equal(t, 2, slice.Rows[0].Number)
	assert.Equal(t, 4, slice.Rows[2].Number)
}

func TestRowsOffsetShiftsRangeStart(t *testing.T) {
	wb := openFixture(t)

	opts := DefaultQueryOptions()
	opts.Offset = 2
	slice, err := wb.Rows("Returns", &RowRange{Start: 2, End: 6}, opts)
	require.NoError(t, err)
	require.Len(t, slice.Rows, 3)
	assert.Equal(t, 4, slice.Rows[0].Number)
	assert.Equal(t, 6, slice.Rows[2].Number)
}

func TestRowsWithoutRangeStartsAfterHeader(t *testing.T) {
	wb := openFixture(t)

	opts := DefaultQueryOptions()
	opts.Limit = 4
	slice, err := wb.Rows("Sales", nil, opts)
	require.NoError(t, err)
	require.Len(t, slice.Rows, 4)
	assert.Equal(t, 2, slice.Rows[0].Number)
	assert.Equal(t, 5, slice.Rows[3].Number)
	assert.Equal(t, "User 01", slice.Rows[0].Values[1])
}

func TestRowsOffsetPastEnd(t *testing.T) {
	wb := openFixture(t)

	opts := DefaultQueryOptions()
	opts.Offset = 100
	slice, err := wb.Rows("Returns", nil, opts)
	require.NoError(t, err)
	assert.Empty(t, slice.Rows)
}

func TestRowsInvalidOptions(t *testing.T) {
	wb := openFixture(t)

	opts := DefaultQueryOptions()
	opts.Limit = 0
	_, err := wb.Rows("Sales", nil, opts)
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "limit", argErr.Name)
}

func TestColumnByName(t *testing.T) {
	wb := openFixture(t)

	opts := DefaultQueryOptions()
	opts.Limit = 10
	slice, err := wb.Column("Sales", "Email", opts)
	require.NoError(t, err)
	assert.Equal(t, "Email", slice.Column)
	assert.Equal(t, 2, slice.Index)
	require.Len(t, slice.Values, 10)
	assert.Equal(t, 2, slice.Values[0].Row)
	assert.Equal(t, "user01@example.com", slice.Values[0].Value)
	assert.Equal(t, "user10@example.com", slice.Values[9].Value)
}

func TestColumnNameAndIndexAgree(t *testing.T) {
	wb := openFixture(t)

	opts := DefaultQueryOptions()
	opts.Limit = 5
	opts.Offset = 1
	byName, err := wb.Column("Sales", "Email", opts)
	require.NoError(t, err)
	byIndex, err := wb.Column("Sales", "2", opts)
	require.NoError(t, err)

	assert.Equal(t, byName.Column, byIndex.Column)
	assert.Equal(t, byName.Index, byIndex.Index)
	assert.Equal(t, byName.Values, byIndex.Values)
}

func TestColumnNameIsCaseSensitive(t *testing.T) {
	wb := openFixture(t)

	_, err := wb.Column("Sales", "email", DefaultQueryOptions())
	var notFound *ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "email", notFound.Requested)
	assert.Contains(t, err.Error(), "Email")
}

func TestColumnIndexOutOfRange(t *testing.T) {
	wb := openFixture(t)

	_, err := wb.Column("Sales", "99", DefaultQueryOptions())
	var notFound *ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestColumnOffsetPastEnd(t *testing.T) {
	wb := openFixture(t)

	opts := DefaultQueryOptions()
	opts.Offset = 100
	slice, err := wb.Column("Sales", "Email", opts)
	require.NoError(t, err)
	assert.Empty(t, slice.Values)
	assert.Equal(t, 0, slice.Showing)
}

func TestMergedRangeValueOnlyAtAnchor(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Quarterly Report"))
	require.NoError(t, f.MergeCell("Sheet1", "A1", "C1"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "x"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "y"))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", "z"))

	path := filepath.Join(t.TempDir(), "merged.xlsx")
	require.NoError(t, f.SaveAs(path))

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	slice, err := wb.Rows("", &RowRange{Start: 1, End: 1}, DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, slice.Rows, 1)

	values := slice.Rows[0].Values
	require.NotEmpty(t, values)
	assert.Equal(t, "Quarterly Report", values[0])
	for _, v := range values[1:] {
		assert.Empty(t, v)
	}
}

func TestUncachedFormulaReadsEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Value"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 21))
	require.NoError(t, f.SetCellFormula("Sheet1", "B2", "A2*2"))

	path := filepath.Join(t.TempDir(), "formula.xlsx")
	require.NoError(t, f.SaveAs(path))

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	slice, err := wb.Rows("", &RowRange{Start: 2, End: 2}, DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, slice.Rows, 1)

	values := slice.Rows[0].Values
	assert.Equal(t, "21", values[0])
	if len(values) > 1 {
		assert.Empty(t, values[1])
	}
}
