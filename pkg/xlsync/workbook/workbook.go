// Package workbook provides the excelize-backed spreadsheet store used by
// the reconciler. All row and column positions are 1-based, matching the
// spreadsheet coordinate system.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps an open xlsx file. The zero value is not usable; obtain
// one via Open.
type Workbook struct {
	f    *excelize.File
	path string
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f, path: path}, nil
}

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// Close releases the underlying file handle without saving.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Save writes the workbook back to the path it was opened from.
func (w *Workbook) Save() error {
	return w.f.Save()
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// HasSheet reports whether a sheet with the given name exists.
func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// Header returns row 1 of the sheet as an ordered sequence of column names.
// A sheet with no rows yields an empty header.
func (w *Workbook) Header(sheet string) ([]string, error) {
	return w.ReadRow(sheet, 1)
}

// ReadRow returns the cell values of one row. Streams rows instead of
// loading the whole sheet, since callers mostly want row 1.
func (w *Workbook) ReadRow(sheet string, row int) ([]string, error) {
	if row < 1 {
		return nil, fmt.Errorf("invalid row index %d", row)
	}
	rows, err := w.f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for cur := 1; rows.Next(); cur++ {
		if cur < row {
			continue
		}
		return rows.Columns()
	}
	return nil, nil
}

// InsertColumn inserts one blank column before pos, shifting the header and
// every data row one position right.
func (w *Workbook) InsertColumn(sheet string, pos int) error {
	col, err := excelize.ColumnNumberToName(pos)
	if err != nil {
		return err
	}
	return w.f.InsertCols(sheet, col, 1)
}

// DeleteColumn removes the column at pos from the header and every data row.
func (w *Workbook) DeleteColumn(sheet string, pos int) error {
	col, err := excelize.ColumnNumberToName(pos)
	if err != nil {
		return err
	}
	return w.f.RemoveCol(sheet, col)
}

// SetCell writes a string value at (row, col).
func (w *Workbook) SetCell(sheet string, row, col int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellValue(sheet, cell, value)
}
