// Package exceltable writes guigrid views as Excel workbooks
// and reads workbook sheets back as guigrid.StringsView.
//
// The package uses the excelize library (github.com/xuri/excelize/v2)
// to create and parse .xlsx files.
// Every view becomes one sheet named after the view's title,
// with the column titles as first row.
//
// Example usage:
//
//	snapshot, err := grid.Snapshot("Orders")
//	if err != nil {
//	    return err
//	}
//	err = exceltable.WriteFile(fs.File("orders.xlsx"), snapshot)
package exceltable

import (
	"bytes"
	"errors"
	"io"
	"strings"

	fs "github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-guigrid"
)

// ReadFirstSheet reads the first sheet from an Excel file provided via io.Reader.
//
// The first row of the sheet is used as column headers, and subsequent rows
// contain the data. Empty rows and columns are removed from the
// edges of the data range.
// If rawCellStrings is true, cell values are returned without
// the number formats of the cells applied.
func ReadFirstSheet(reader io.Reader, rawCellStrings bool) (sheetView *guigrid.StringsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	return readSheet(f, sheet, rawCellStrings)
}

// Read reads all non empty sheets from an Excel file provided via io.Reader.
// The title of every returned view is the sheet name.
func Read(reader io.Reader, rawCellStrings bool) (sheetViews []*guigrid.StringsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	for _, sheet := range f.GetSheetList() {
		view, err := readSheet(f, sheet, rawCellStrings)
		if err != nil {
			if errors.Is(err, ErrEmptySheet) {
				continue
			}
			return nil, err
		}
		sheetViews = append(sheetViews, view)
	}
	return sheetViews, nil
}

// ReadFile reads all non empty sheets of an Excel file.
func ReadFile(file fs.File, rawCellStrings bool) ([]*guigrid.StringsView, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data), rawCellStrings)
}

func readSheet(f *excelize.File, sheet string, rawCellStrings bool) (*guigrid.StringsView, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: rawCellStrings})
	if err != nil {
		return nil, err
	}
	rows = removeEmptyRows(rows)
	numCols := removeEmptyColumns(rows)
	if len(rows) == 0 || numCols == 0 {
		return nil, ErrEmptySheet
	}
	columns := rows[0]
	rows = rows[1:]
	if len(columns) < numCols {
		// Append empty strings to columns to match numCols
		columns = append(columns, make([]string, numCols-len(columns))...)
	}
	return &guigrid.StringsView{Tit: sheet, Cols: columns, Rows: rows}, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// removeEmptyRows removes empty rows from the top and bottom.
func removeEmptyRows(rows [][]string) [][]string {
	for len(rows) > 0 && isEmptyRow(rows[0]) {
		rows = rows[1:]
	}
	for len(rows) > 0 && isEmptyRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// removeEmptyColumns removes empty columns on the left
// and right in place and returns the remaining number of columns.
func removeEmptyColumns(rows [][]string) (numCols int) {
	left := -1
	for _, row := range rows {
		for col, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if left < 0 || col < left {
				left = col
			}
			numCols = max(numCols, col+1)
		}
	}
	if left < 0 {
		return 0
	}
	for i, row := range rows {
		row = row[min(left, len(row)):min(numCols, len(row))]
		rows[i] = row
	}
	return numCols - left
}
