package guigrid

import (
	"io"
	"strings"
)

// ColumnWidth is the display width of a column header.
type ColumnWidth struct {
	Column string
	Width  int
}

// HeaderWidths returns the header cell width of every column
// in the order of ColumnOrder.
func (g *Grid) HeaderWidths() ([]ColumnWidth, error) {
	order, err := g.ColumnOrder()
	if err != nil {
		return nil, err
	}
	widths := make([]ColumnWidth, len(order))
	for col, column := range order {
		width, err := g.handle.CellWidth(0, column)
		if err != nil {
			return nil, g.fail("CellWidth", 0, col, err)
		}
		widths[col] = ColumnWidth{Column: column, Width: width}
	}
	return widths, nil
}

// TableWidth returns the sum of all header widths
// plus one separator character between each pair of columns.
func (g *Grid) TableWidth() (int, error) {
	widths, err := g.HeaderWidths()
	if err != nil {
		return 0, err
	}
	return tableWidth(widths), nil
}

func tableWidth(widths []ColumnWidth) int {
	total := max(len(widths)-1, 0)
	for _, w := range widths {
		total += w.Width
	}
	return total
}

// WriteFormatted writes a human readable dump of the grid to w:
// the column titles, a line of TableWidth dashes,
// one line per row, and a closing dash line.
// Cells are separated by " | ".
func (g *Grid) WriteFormatted(w io.Writer) error {
	var b strings.Builder
	err := g.formatTo(&b)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, b.String())
	return err
}

// Formatted returns the dump written by WriteFormatted as string.
func (g *Grid) Formatted() (string, error) {
	var b strings.Builder
	err := g.formatTo(&b)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (g *Grid) formatTo(b *strings.Builder) error {
	const cellSeparator = " | "

	titles, err := g.ColumnTitles()
	if err != nil {
		return err
	}
	width, err := g.TableWidth()
	if err != nil {
		return err
	}
	numRows, err := g.RowCount()
	if err != nil {
		return err
	}
	separatorLine := strings.Repeat("-", width)

	b.WriteString(strings.Join(titles, cellSeparator))
	b.WriteByte('\n')
	b.WriteString(separatorLine)
	b.WriteByte('\n')
	for row := 0; row < numRows; row++ {
		values, err := g.rowValues(row, len(titles))
		if err != nil {
			return err
		}
		b.WriteString(strings.Join(values, cellSeparator))
		b.WriteByte('\n')
	}
	b.WriteString(separatorLine)
	b.WriteByte('\n')
	return nil
}
