package guigrid

// GridHandle is an Element known to be a tabular grid control.
//
// Column identifiers returned by ColumnOrder are opaque strings
// only known at runtime. Cell access uses positional column indices,
// title and width queries use the identifiers.
type GridHandle interface {
	Element

	RowCount() (int, error)
	ColumnCount() (int, error)
	VisibleRowCount() (int, error)
	ColumnOrder() ([]string, error)

	// SelectedRows returns the selected row indices
	// as comma separated string, empty if nothing is selected.
	SelectedRows() (string, error)
	SetSelectedRows(rows string) error
	SelectedRow() (int, error)
	SelectedColumn() (int, error)
	SelectAll() error

	CellValue(row, col int) (string, error)
	ModifyCell(row, col int, value string) error
	DisplayedColumnTitle(column string) (string, error)
	CellWidth(row int, column string) (int, error)

	SetCurrentCell(row, col int) error
	DoubleClick() error
	PressButton(row, col int) error
	SetFirstVisibleRow(row int) error
}

// VerticalScroller is implemented by a GridHandle
// that exposes its vertical scrollbar.
type VerticalScroller interface {
	VerticalScrollbar() (Scrollbar, error)
}

// Scrollbar is a scrollbar with a settable position.
type Scrollbar interface {
	SetPosition(pos int) error
}
