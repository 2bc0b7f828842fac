package guigrid

import "slices"

// Snapshot reads all cells of the grid into a StringsView
// with the displayed column titles as columns.
// The returned view does not change with the grid.
func (g *Grid) Snapshot(title string) (*StringsView, error) {
	titles, err := g.ColumnTitles()
	if err != nil {
		return nil, err
	}
	numRows, err := g.RowCount()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, numRows)
	for row := range rows {
		rows[row], err = g.rowValues(row, len(titles))
		if err != nil {
			return nil, err
		}
	}
	return &StringsView{Tit: title, Cols: titles, Rows: rows}, nil
}

// SnapshotSelected is like Snapshot but the returned view
// only contains the rows reported by SelectedRows.
// Selected indices beyond the row count are dropped.
func (g *Grid) SnapshotSelected(title string) (View, error) {
	snapshot, err := g.Snapshot(title)
	if err != nil {
		return nil, err
	}
	selected, err := g.SelectedRows()
	if err != nil {
		return nil, err
	}
	selected = slices.DeleteFunc(selected, func(row int) bool {
		return row < 0 || row >= snapshot.NumRows()
	})
	if selected == nil {
		selected = []int{}
	}
	return &FilteredView{Source: snapshot, RowMapping: selected}, nil
}
