// Package guigrid turns a grid control of a GUI automation host
// into a structured table with bounds-aware cell access,
// selection management, searching and named-field rows.
//
// The automation host is reached through the GridHandle interface.
// Every method of Grid performs one or more blocking calls into the host
// without internal timeouts, retries, or caching, so a hanging host
// hangs the caller. A Grid is not safe for concurrent use.
//
// Example:
//
//	grid, err := guigrid.NewGrid(handle)
//	if err != nil {
//	    return err
//	}
//	for row, err := range grid.Rows() {
//	    if err != nil {
//	        return err
//	    }
//	    material, err := row.Get("MATNR")
//	    ...
//	}
package guigrid

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Grid wraps a GridHandle and exposes it as a table.
//
// The Grid borrows the handle: it does not own the host element
// and must not be used after the session that produced the handle was closed.
type Grid struct {
	handle GridHandle
	logger *slog.Logger
}

// NewGrid returns a Grid for handle after checking
// that the handle's type is listed in GridTypes.
func NewGrid(handle GridHandle) (*Grid, error) {
	typ, err := handle.Type()
	if err != nil {
		return nil, &ExternalCallError{Op: "Type", Row: -1, Col: -1, Err: err}
	}
	if !slices.Contains(GridTypes, typ) {
		return nil, fmt.Errorf("%w: type %q", ErrNotGrid, typ)
	}
	return &Grid{handle: handle, logger: discardLogger}, nil
}

func (g *Grid) clone() *Grid {
	c := new(Grid)
	*c = *g
	return c
}

// WithLogger returns a copy of the grid that logs
// failed host calls to logger at debug level.
// Passing nil disables logging.
func (g *Grid) WithLogger(logger *slog.Logger) *Grid {
	mod := g.clone()
	if logger == nil {
		logger = discardLogger
	}
	mod.logger = logger
	return mod
}

// Handle returns the wrapped GridHandle.
func (g *Grid) Handle() GridHandle { return g.handle }

// fail wraps err as *ExternalCallError and logs it.
func (g *Grid) fail(op string, row, col int, err error) error {
	g.logger.Debug("grid host call failed", "op", op, "row", row, "col", col, "error", err)
	return &ExternalCallError{Op: op, Row: row, Col: col, Err: err}
}

func (g *Grid) RowCount() (int, error) {
	n, err := g.handle.RowCount()
	if err != nil {
		return 0, g.fail("RowCount", -1, -1, err)
	}
	return n, nil
}

func (g *Grid) ColumnCount() (int, error) {
	n, err := g.handle.ColumnCount()
	if err != nil {
		return 0, g.fail("ColumnCount", -1, -1, err)
	}
	return n, nil
}

func (g *Grid) VisibleRowCount() (int, error) {
	n, err := g.handle.VisibleRowCount()
	if err != nil {
		return 0, g.fail("VisibleRowCount", -1, -1, err)
	}
	return n, nil
}

// ColumnOrder returns the column identifiers in display order.
func (g *Grid) ColumnOrder() ([]string, error) {
	order, err := g.handle.ColumnOrder()
	if err != nil {
		return nil, g.fail("ColumnOrder", -1, -1, err)
	}
	return order, nil
}

// ColumnIndex returns the index of column within ColumnOrder
// or an *UnknownColumnError.
func (g *Grid) ColumnIndex(column string) (int, error) {
	order, err := g.ColumnOrder()
	if err != nil {
		return 0, err
	}
	index := slices.Index(order, column)
	if index < 0 {
		return 0, &UnknownColumnError{Name: column, Known: order}
	}
	return index, nil
}

// SelectedRows returns the ascending distinct indices of the selected rows.
// The host reports them as comma separated list
// that may also contain ranges like "1,3-5".
// An empty selection results in an empty slice.
//
// Single indices are returned as reported.
// Ranges are expanded only if their end is below RowCount,
// other ranges are returned as *ExternalCallError.
//
// SelectedRows and SelectedCell query independent host state
// that is not guaranteed to be consistent.
func (g *Grid) SelectedRows() ([]int, error) {
	selected, err := g.handle.SelectedRows()
	if err != nil {
		return nil, g.fail("SelectedRows", -1, -1, err)
	}
	numRows := -1
	if strings.Contains(selected, "-") {
		numRows, err = g.RowCount()
		if err != nil {
			return nil, err
		}
	}
	rows, err := parseRowList(selected, numRows)
	if err != nil {
		return nil, g.fail("SelectedRows", -1, -1, err)
	}
	return rows, nil
}

// parseRowList parses a comma separated list of row indices and ranges.
// Range ends must be below numRows.
func parseRowList(list string, numRows int) ([]int, error) {
	var rows []int
	for part := range strings.SplitSeq(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		first, last, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, fmt.Errorf("invalid row %q in selection %q", part, list)
		}
		if !isRange {
			rows = append(rows, from)
			continue
		}
		to, err := strconv.Atoi(strings.TrimSpace(last))
		if err != nil || to < from {
			return nil, fmt.Errorf("invalid row range %q in selection %q", part, list)
		}
		if to >= numRows {
			return nil, fmt.Errorf("row range %q in selection %q exceeds row count %d", part, list, numRows)
		}
		for row := from; row <= to; row++ {
			rows = append(rows, row)
		}
	}
	slices.Sort(rows)
	return slices.Compact(rows), nil
}

// CellCoord is the position of a cell.
type CellCoord struct {
	Row int
	Col int
}

// SelectedCell returns the current cell as reported by the host
// without validating it against the grid dimensions.
func (g *Grid) SelectedCell() (CellCoord, error) {
	row, err := g.handle.SelectedRow()
	if err != nil {
		return CellCoord{}, g.fail("SelectedRow", -1, -1, err)
	}
	col, err := g.handle.SelectedColumn()
	if err != nil {
		return CellCoord{}, g.fail("SelectedColumn", -1, -1, err)
	}
	return CellCoord{Row: row, Col: col}, nil
}

// CellValue returns the value of a cell.
// Indices are not checked here, the host rejects invalid ones.
func (g *Grid) CellValue(row, col int) (string, error) {
	value, err := g.handle.CellValue(row, col)
	if err != nil {
		return "", g.fail("CellValue", row, col, err)
	}
	return value, nil
}

// SetCellValue writes value to a cell or returns an error
// wrapping ErrNotEditable if the grid is not changeable.
func (g *Grid) SetCellValue(row, col int, value string) error {
	changeable, err := g.handle.Changeable()
	if err != nil {
		return g.fail("Changeable", -1, -1, err)
	}
	if !changeable {
		return fmt.Errorf("SetCellValue(%d, %d): %w", row, col, ErrNotEditable)
	}
	err = g.handle.ModifyCell(row, col, value)
	if err != nil {
		return g.fail("ModifyCell", row, col, err)
	}
	return nil
}

func (g *Grid) SelectRow(row int) error {
	err := g.handle.SetSelectedRows(strconv.Itoa(row))
	if err != nil {
		return g.fail("SelectRow", row, -1, err)
	}
	return nil
}

// SelectRows replaces the selection with rows.
// Calling it without rows clears the selection.
func (g *Grid) SelectRows(rows ...int) error {
	strs := make([]string, len(rows))
	for i, row := range rows {
		strs[i] = strconv.Itoa(row)
	}
	err := g.handle.SetSelectedRows(strings.Join(strs, ","))
	if err != nil {
		return g.fail("SelectRows", -1, -1, err)
	}
	return nil
}

func (g *Grid) SelectAllRows() error {
	err := g.handle.SelectAll()
	if err != nil {
		return g.fail("SelectAll", -1, -1, err)
	}
	return nil
}

func (g *Grid) ClearSelection() error {
	err := g.handle.SetSelectedRows("")
	if err != nil {
		return g.fail("ClearSelection", -1, -1, err)
	}
	return nil
}

// ColumnTitles returns the displayed titles
// of the columns in the order of ColumnOrder.
func (g *Grid) ColumnTitles() ([]string, error) {
	order, err := g.ColumnOrder()
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(order))
	for col, column := range order {
		titles[col], err = g.handle.DisplayedColumnTitle(column)
		if err != nil {
			return nil, g.fail("DisplayedColumnTitle", -1, col, err)
		}
	}
	return titles, nil
}

// ScrollToRow makes row the first visible row.
// The vertical scrollbar is used if the handle implements VerticalScroller
// and returns a scrollbar, else the first visible row is set directly.
func (g *Grid) ScrollToRow(row int) error {
	if scroller, ok := g.handle.(VerticalScroller); ok {
		scrollbar, err := scroller.VerticalScrollbar()
		if err != nil {
			return g.fail("VerticalScrollbar", -1, -1, err)
		}
		if scrollbar != nil {
			err = scrollbar.SetPosition(row)
			if err != nil {
				return g.fail("ScrollbarPosition", row, -1, err)
			}
			return nil
		}
	}
	err := g.handle.SetFirstVisibleRow(row)
	if err != nil {
		return g.fail("SetFirstVisibleRow", row, -1, err)
	}
	return nil
}

// DoubleClickCell moves the current cell to row and col and double-clicks it.
// If the double-click fails the current cell stays moved.
func (g *Grid) DoubleClickCell(row, col int) error {
	err := g.handle.SetCurrentCell(row, col)
	if err != nil {
		return g.fail("SetCurrentCell", row, col, err)
	}
	err = g.handle.DoubleClick()
	if err != nil {
		return g.fail("DoubleClick", row, col, err)
	}
	return nil
}

// PressButton presses the button displayed in a cell.
func (g *Grid) PressButton(row, col int) error {
	err := g.handle.PressButton(row, col)
	if err != nil {
		return g.fail("PressButton", row, col, err)
	}
	return nil
}

// RowData returns the cell values of row
// keyed by the column identifiers of ColumnOrder.
func (g *Grid) RowData(row int) (map[string]string, error) {
	order, err := g.ColumnOrder()
	if err != nil {
		return nil, err
	}
	values, err := g.rowValues(row, len(order))
	if err != nil {
		return nil, err
	}
	data := make(map[string]string, len(order))
	for col, column := range order {
		data[column] = values[col]
	}
	return data, nil
}

func (g *Grid) rowValues(row, numCols int) ([]string, error) {
	values := make([]string, numCols)
	for col := range values {
		var err error
		values[col], err = g.CellValue(row, col)
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// ColumnData returns all values of a column in row order.
func (g *Grid) ColumnData(col int) ([]string, error) {
	numRows, err := g.RowCount()
	if err != nil {
		return nil, err
	}
	values := make([]string, numRows)
	for row := range values {
		values[row], err = g.CellValue(row, col)
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// FindRowByValue returns the first row whose cell in col equals value
// or NotFound if no row matches.
func (g *Grid) FindRowByValue(col int, value string) (int, error) {
	numRows, err := g.RowCount()
	if err != nil {
		return NotFound, err
	}
	for row := 0; row < numRows; row++ {
		cell, err := g.CellValue(row, col)
		if err != nil {
			return NotFound, err
		}
		if cell == value {
			return row, nil
		}
	}
	return NotFound, nil
}

// FindRowByColumn is like FindRowByValue
// but addresses the column by its identifier.
func (g *Grid) FindRowByColumn(column, value string) (int, error) {
	col, err := g.ColumnIndex(column)
	if err != nil {
		return NotFound, err
	}
	return g.FindRowByValue(col, value)
}

// Row returns a Row for index with a snapshot of the current ColumnOrder.
func (g *Grid) Row(index int) (*Row, error) {
	order, err := g.ColumnOrder()
	if err != nil {
		return nil, err
	}
	return &Row{grid: g, index: index, columns: order}, nil
}

// Rows returns an iterator over all rows.
// The row count is read when an iteration starts,
// so every iteration observes the current state of the grid.
// Iteration stops after the first yielded error.
func (g *Grid) Rows() iter.Seq2[*Row, error] {
	return func(yield func(*Row, error) bool) {
		numRows, err := g.RowCount()
		if err != nil {
			yield(nil, err)
			return
		}
		for index := 0; index < numRows; index++ {
			row, err := g.Row(index)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}
