package sheetq

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file extension is not .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrLegacyFormat indicates a legacy binary .xls workbook, which must be
// converted to .xlsx before it can be inspected.
var ErrLegacyFormat = errors.New("legacy .xls format not supported, convert to .xlsx first")

// SheetNotFoundError reports a sheet lookup failure along with the sheets
// that actually exist in the workbook.
type SheetNotFoundError struct {
	Requested string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found, available: %s",
		e.Requested, strings.Join(e.Available, ", "))
}

// ColumnNotFoundError reports a column lookup failure along with the header
// names the reference was matched against.
type ColumnNotFoundError struct {
	Requested string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found, available: %s",
		e.Requested, strings.Join(e.Available, ", "))
}

// ArgumentError reports an invalid command argument or option value.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}
