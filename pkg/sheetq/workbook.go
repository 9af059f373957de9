package sheetq

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only handle to an xlsx file. It holds an excelize file
// for workbook-level metadata (sheet list) and an xlsxreader handle for
// forward-only row streaming, so sheet data is never materialized in full.
type Workbook struct {
	path   string
	file   *excelize.File
	reader *xlsxreader.XlsxFileCloser
}

// Open validates the path and opens the workbook. Only the modern zipped
// .xlsx format is accepted; the extension is checked before any parsing.
func Open(path string) (*Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
	case ".xls":
		return nil, errors.Wrap(ErrLegacyFormat, path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s (only .xlsx is supported)", path)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrFileNotFound, path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", path)
	}

	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "open workbook %s", path)
	}

	return &Workbook{path: path, file: f, reader: xl}, nil
}

// Close releases both underlying file handles.
func (w *Workbook) Close() error {
	var firstErr error
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			firstErr = errors.Wrap(err, "close workbook")
		}
	}
	if w.reader != nil {
		if err := w.reader.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "close workbook")
		}
	}
	return firstErr
}

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// ResolveSheet resolves a sheet reference case-insensitively to its
// canonical name. An empty reference selects the first sheet.
func (w *Workbook) ResolveSheet(name string) (string, error) {
	sheets := w.SheetNames()
	if name == "" {
		if len(sheets) == 0 {
			return "", errors.Errorf("workbook %s has no sheets", w.path)
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if strings.EqualFold(s, name) {
			return s, nil
		}
	}
	return "", &SheetNotFoundError{Requested: name, Available: sheets}
}
