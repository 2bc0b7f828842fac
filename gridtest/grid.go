// Package gridtest provides a scriptable in-memory GridHandle
// for testing code that drives grids through package guigrid.
package gridtest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/domonda/go-guigrid"
)

// ErrIndexOutOfRange is returned by cell operations
// for indices outside of the grid.
var ErrIndexOutOfRange = errors.New("index out of range")

var _ guigrid.GridHandle = new(Grid)

// Grid is a fake grid control holding its state in exported fields
// that tests may set up and inspect directly.
//
// Cells holds the values by row and then by column index.
// Column identifiers are taken from Columns and
// Titles and Widths are keyed by those identifiers.
// If a title is missing the identifier is returned as title.
//
// Errors can be injected per method name with Fail,
// for example Fail["CellValue"] makes every CellValue call fail.
// Every method call is appended to Calls.
type Grid struct {
	ElementID   string
	ElementType string
	ElementName string
	ElementText string
	Geometry    guigrid.Bounds
	Container   guigrid.Element

	Columns  []string
	Titles   map[string]string
	Widths   map[string]int
	Cells    [][]string
	Editable bool

	Selection      string
	CurrentRow     int
	CurrentColumn  int
	FirstVisible   int
	Visible        int
	DoubleClicks   int
	PressedButtons []guigrid.CellCoord
	SelectAllCalls int

	Fail  map[string]error
	Calls []string
}

// New returns a changeable fake grid of type "GuiGridView"
// with the passed columns and rows.
func New(columns []string, rows ...[]string) *Grid {
	return &Grid{
		ElementID:   "wnd[0]/usr/cntlGRID/shellcont/shell",
		ElementType: "GuiGridView",
		Columns:     columns,
		Titles:      make(map[string]string),
		Widths:      make(map[string]int),
		Cells:       rows,
		Editable:    true,
		Visible:     len(rows),
		Fail:        make(map[string]error),
	}
}

// WithScrollbar returns a fake that also implements
// guigrid.VerticalScroller with the returned Scrollbar.
func (g *Grid) WithScrollbar() (*ScrollGrid, *Scrollbar) {
	bar := &Scrollbar{grid: g}
	return &ScrollGrid{Grid: g, Bar: bar}, bar
}

func (g *Grid) call(method string) error {
	g.Calls = append(g.Calls, method)
	return g.Fail[method]
}

func (g *Grid) checkCell(row, col int) error {
	if row < 0 || row >= len(g.Cells) || col < 0 || col >= len(g.Columns) {
		return fmt.Errorf("cell (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	return nil
}

func (g *Grid) ID() (string, error)   { return g.ElementID, g.call("ID") }
func (g *Grid) Type() (string, error) { return g.ElementType, g.call("Type") }
func (g *Grid) Name() (string, error) { return g.ElementName, g.call("Name") }
func (g *Grid) Text() (string, error) { return g.ElementText, g.call("Text") }

func (g *Grid) SetText(text string) error {
	if err := g.call("SetText"); err != nil {
		return err
	}
	g.ElementText = text
	return nil
}

func (g *Grid) Changeable() (bool, error)        { return g.Editable, g.call("Changeable") }
func (g *Grid) Bounds() (guigrid.Bounds, error)  { return g.Geometry, g.call("Bounds") }
func (g *Grid) Parent() (guigrid.Element, error) { return g.Container, g.call("Parent") }
func (g *Grid) Children() ([]guigrid.Element, error) {
	return nil, g.call("Children")
}

func (g *Grid) RowCount() (int, error)        { return len(g.Cells), g.call("RowCount") }
func (g *Grid) ColumnCount() (int, error)     { return len(g.Columns), g.call("ColumnCount") }
func (g *Grid) VisibleRowCount() (int, error) { return g.Visible, g.call("VisibleRowCount") }

func (g *Grid) ColumnOrder() ([]string, error) {
	return slices.Clone(g.Columns), g.call("ColumnOrder")
}

func (g *Grid) SelectedRows() (string, error) { return g.Selection, g.call("SelectedRows") }

func (g *Grid) SetSelectedRows(rows string) error {
	if err := g.call("SetSelectedRows"); err != nil {
		return err
	}
	g.Selection = rows
	return nil
}

func (g *Grid) SelectedRow() (int, error)    { return g.CurrentRow, g.call("SelectedRow") }
func (g *Grid) SelectedColumn() (int, error) { return g.CurrentColumn, g.call("SelectedColumn") }

// SelectAll sets Selection to the range of all rows.
func (g *Grid) SelectAll() error {
	if err := g.call("SelectAll"); err != nil {
		return err
	}
	g.SelectAllCalls++
	g.Selection = ""
	if len(g.Cells) > 0 {
		g.Selection = fmt.Sprintf("0-%d", len(g.Cells)-1)
	}
	return nil
}

func (g *Grid) CellValue(row, col int) (string, error) {
	if err := g.call("CellValue"); err != nil {
		return "", err
	}
	if err := g.checkCell(row, col); err != nil {
		return "", err
	}
	if col >= len(g.Cells[row]) {
		return "", nil
	}
	return g.Cells[row][col], nil
}

func (g *Grid) ModifyCell(row, col int, value string) error {
	if err := g.call("ModifyCell"); err != nil {
		return err
	}
	if err := g.checkCell(row, col); err != nil {
		return err
	}
	for len(g.Cells[row]) <= col {
		g.Cells[row] = append(g.Cells[row], "")
	}
	g.Cells[row][col] = value
	return nil
}

func (g *Grid) DisplayedColumnTitle(column string) (string, error) {
	if err := g.call("DisplayedColumnTitle"); err != nil {
		return "", err
	}
	if !slices.Contains(g.Columns, column) {
		return "", fmt.Errorf("column %q: %w", column, ErrIndexOutOfRange)
	}
	if title, ok := g.Titles[column]; ok {
		return title, nil
	}
	return column, nil
}

func (g *Grid) CellWidth(row int, column string) (int, error) {
	if err := g.call("CellWidth"); err != nil {
		return 0, err
	}
	if !slices.Contains(g.Columns, column) {
		return 0, fmt.Errorf("column %q: %w", column, ErrIndexOutOfRange)
	}
	return g.Widths[column], nil
}

func (g *Grid) SetCurrentCell(row, col int) error {
	if err := g.call("SetCurrentCell"); err != nil {
		return err
	}
	g.CurrentRow, g.CurrentColumn = row, col
	return nil
}

func (g *Grid) DoubleClick() error {
	if err := g.call("DoubleClick"); err != nil {
		return err
	}
	g.DoubleClicks++
	return nil
}

func (g *Grid) PressButton(row, col int) error {
	if err := g.call("PressButton"); err != nil {
		return err
	}
	if err := g.checkCell(row, col); err != nil {
		return err
	}
	g.PressedButtons = append(g.PressedButtons, guigrid.CellCoord{Row: row, Col: col})
	return nil
}

func (g *Grid) SetFirstVisibleRow(row int) error {
	if err := g.call("SetFirstVisibleRow"); err != nil {
		return err
	}
	g.FirstVisible = row
	return nil
}

// ScrollGrid is a Grid that implements guigrid.VerticalScroller.
type ScrollGrid struct {
	*Grid
	Bar *Scrollbar
}

var _ guigrid.VerticalScroller = new(ScrollGrid)

// VerticalScrollbar returns Bar, which may be nil
// to simulate a grid without scrollbar.
func (g *ScrollGrid) VerticalScrollbar() (guigrid.Scrollbar, error) {
	if err := g.call("VerticalScrollbar"); err != nil {
		return nil, err
	}
	if g.Bar == nil {
		return nil, nil
	}
	return g.Bar, nil
}

// Scrollbar is a fake scrollbar remembering its position.
type Scrollbar struct {
	grid     *Grid
	Position int
}

func (s *Scrollbar) SetPosition(pos int) error {
	if err := s.grid.call("SetPosition"); err != nil {
		return err
	}
	s.Position = pos
	return nil
}
