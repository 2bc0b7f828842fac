package guigrid

import (
	"unicode/utf8"
)

// ViewStrings returns all cells of view as rows of strings,
// prepended by the column titles if addHeaderRow is true.
func ViewStrings(view View, addHeaderRow bool) [][]string {
	var (
		numCols = len(view.Columns())
		numRows = view.NumRows()
		rows    = make([][]string, 0, numRows+1)
	)
	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}
	for row := 0; row < numRows; row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = view.Cell(row, col)
		}
		rows = append(rows, rowStrs)
	}
	return rows
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// If numCols is negative, the length of the longest row is used.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}
