package guigrid

var _ View = new(FilteredView)

// FilteredView restricts the rows and columns of a Source view.
type FilteredView struct {
	Source View
	// If not nil then the view has as many
	// rows as RowMapping has elements and
	// every element is a row index into the Source view.
	// If nil then the view has as many rows as the Source view.
	RowMapping []int
	// If not nil then the view has as many
	// columns as ColumnMapping has elements and
	// every element is a column index into the Source view.
	// If nil then the view has as many columns as the Source view.
	ColumnMapping []int
}

func (view *FilteredView) Title() string {
	return view.Source.Title()
}

func (view *FilteredView) Columns() []string {
	sourceCols := view.Source.Columns()
	if view.ColumnMapping == nil {
		return sourceCols
	}
	mappedCols := make([]string, len(view.ColumnMapping))
	for i, iSource := range view.ColumnMapping {
		if iSource >= 0 && iSource < len(sourceCols) {
			mappedCols[i] = sourceCols[iSource]
		}
	}
	return mappedCols
}

func (view *FilteredView) NumCols() int {
	if view.ColumnMapping != nil {
		return len(view.ColumnMapping)
	}
	return len(view.Source.Columns())
}

func (view *FilteredView) NumRows() int {
	if view.RowMapping != nil {
		return len(view.RowMapping)
	}
	return view.Source.NumRows()
}

func (view *FilteredView) Cell(row, col int) string {
	if row < 0 || col < 0 || row >= view.NumRows() || col >= view.NumCols() {
		return ""
	}
	if view.RowMapping != nil {
		row = view.RowMapping[row]
	}
	if view.ColumnMapping != nil {
		col = view.ColumnMapping[col]
	}
	return view.Source.Cell(row, col)
}
