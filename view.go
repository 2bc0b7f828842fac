package guigrid

// View is a read-only, in-memory table
// with a title, named columns and string cells.
//
// Views decouple the blocking host calls of a Grid
// from exporting and formatting its data,
// see Grid.Snapshot and the csvtable and exceltable packages.
type View interface {
	// Title of the View
	Title() string

	// Columns returns the column titles
	// which also defines the number of columns.
	Columns() []string

	// NumRows returns the number of rows
	NumRows() int

	// Cell returns the value at row and col
	// or an empty string for out of bounds indices.
	Cell(row, col int) string
}
