package guigrid

import (
	"strings"
)

// StringsView is a View implementation that holds its cells as strings.
// It is the result type of Grid.Snapshot.
//
// The Cols field defines the column names and determines the number of columns.
// Each element in Rows represents a row of data, where each row is a slice of strings.
//
// StringsView supports sparse data: a row within Rows can have fewer slice elements
// than Cols, in which case empty strings are returned as values for missing cells.
//
// Example usage:
//
//	view := guigrid.NewStringsView(
//	    "Orders",
//	    [][]string{
//	        {"ID", "Name"},
//	        {"1", "Alice"},
//	        {"2", "Bob"},
//	    },
//	)
//	fmt.Println(view.Cell(1, 1)) // Output: Bob
type StringsView struct {
	// Tit is the title of this view, returned by the Title() method.
	Tit string

	// Cols contains the column names defining both the column headers
	// and the number of columns in this view.
	Cols []string

	// Rows contains the data rows, where each row is a slice of strings.
	// Rows can have fewer elements than len(Cols) for sparse data support.
	Rows [][]string
}

var _ View = new(StringsView)

// NewStringsView creates a new StringsView.
//
// If no cols are passed and rows is not empty,
// the first row is used as column names and removed from the data rows.
// All column names have leading and trailing whitespace trimmed.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: cols, Rows: rows}
}

// Title returns the title of this view.
func (view *StringsView) Title() string { return view.Tit }

// Columns returns the column names of this view.
func (view *StringsView) Columns() []string { return view.Cols }

// NumRows returns the number of data rows in this view.
func (view *StringsView) NumRows() int { return len(view.Rows) }

// Cell returns the value at the specified row and column indices
// or an empty string if the indices are out of bounds
// or the row has fewer cells.
func (view *StringsView) Cell(row, col int) string {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return ""
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}

// NewHeaderViewFrom creates a HeaderView from an existing View's columns.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Tit: source.Title(), Cols: source.Columns()}
}

// HeaderView is a View with a single row
// that contains the column names as values.
// Writers use it to render header rows
// with the same formatting as data rows.
type HeaderView struct {
	// Tit is the title of this view.
	Tit string

	// Cols contains the column names, which are also used as the data row.
	Cols []string
}

// Title returns the title of this view.
func (view *HeaderView) Title() string { return view.Tit }

// Columns returns the column names of this view.
func (view *HeaderView) Columns() []string { return view.Cols }

// NumRows always returns 1 for HeaderView since it contains only the header row.
func (view *HeaderView) NumRows() int { return 1 }

// Cell returns the column name at col for row 0
// and an empty string for any other position.
func (view *HeaderView) Cell(row, col int) string {
	if row != 0 || col < 0 || col >= len(view.Cols) {
		return ""
	}
	return view.Cols[col]
}
