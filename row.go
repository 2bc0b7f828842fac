package guigrid

import (
	"fmt"
	"slices"
)

// Row gives access to the cells of one grid row by column identifier.
//
// The column order is captured when the Row is created and never refreshed.
// If the grid's columns are rearranged afterwards,
// Get resolves names against the outdated order.
type Row struct {
	grid    *Grid
	index   int
	columns []string
}

// Index returns the zero based row index.
func (r *Row) Index() int { return r.index }

// Columns returns a copy of the column order snapshot.
func (r *Row) Columns() []string { return slices.Clone(r.columns) }

// Get returns the value of the cell in the named column.
// An *UnknownColumnError listing the known columns
// is returned if name is not in the snapshot.
func (r *Row) Get(name string) (string, error) {
	col := slices.Index(r.columns, name)
	if col < 0 {
		return "", &UnknownColumnError{Name: name, Known: slices.Clone(r.columns)}
	}
	return r.grid.CellValue(r.index, col)
}

// Values returns the current values of the row, see Grid.RowData.
func (r *Row) Values() (map[string]string, error) {
	return r.grid.RowData(r.index)
}

func (r *Row) String() string {
	return fmt.Sprintf("Row(%d)", r.index)
}
