// Package htmltable writes guigrid views as HTML tables.
//
// All cell values are HTML-escaped unless a column formatter
// returns raw HTML.
//
// Example usage:
//
//	snapshot, err := grid.Snapshot("Orders")
//	if err != nil {
//	    return err
//	}
//	err = htmltable.NewWriter().
//	    WithHeaderRow(true).
//	    WithTableClass("orders").
//	    WriteView(ctx, os.Stdout, snapshot)
package htmltable

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"maps"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-guigrid"
)

// Writer writes a guigrid.View as HTML table.
//
// Writer is immutable after creation, all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	tableClass       string
	columnFormatters map[int]CellFormatter
	nilValue         template.HTML
	headerRow        bool
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter creates a new HTML table writer
// without table class, formatters or header row
// using HeaderTemplate, RowTemplate and FooterTemplate.
func NewWriter() *Writer {
	return &Writer{
		tableClass:       "",
		columnFormatters: make(map[int]CellFormatter),
		nilValue:         "",
		headerRow:        false,
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// WriteView writes view as HTML table to dest
// with the view's title as caption.
//
// Cells of columns with a registered formatter are formatted by it,
// all other cells and cells where the formatter returned
// errors.ErrUnsupported are written HTML-escaped.
// Empty cells are written as the nil value.
// The context is checked for cancellation before every row.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view guigrid.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		numCols   = len(columns)
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			RawCells: make([]template.HTML, numCols),
		}
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for i := range columns {
			templData.RawCells[i] = template.HTML(template.HTMLEscapeString(columns[i])) //#nosec G203
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col := 0; col < numCols; col++ {
			if colFormatter, ok := w.columnFormatters[col]; ok {
				str, isRaw, err := colFormatter.FormatCell(ctx, view, row, col)
				if err != nil && !errors.Is(err, errors.ErrUnsupported) {
					return err
				}
				if err == nil {
					if !isRaw {
						str = template.HTMLEscapeString(str)
					}
					templData.RawCells[col] = template.HTML(str) //#nosec G203
					continue                                     // next column cell
				}
			}

			str := view.Cell(row, col)
			if str == "" {
				templData.RawCells[col] = w.nilValue
				continue
			}
			templData.RawCells[col] = template.HTML(template.HTMLEscapeString(str)) //#nosec G203
		}

		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}

		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

// WriteFile writes the view as HTML table to file.
func (w *Writer) WriteFile(ctx context.Context, file fs.File, view guigrid.View) error {
	var buf bytes.Buffer
	err := w.WriteView(ctx, &buf, view)
	if err != nil {
		return err
	}
	return file.WriteAll(buf.Bytes())
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithHeaderRow returns a new writer with header row configuration.
// When enabled, the column titles are rendered
// as first row using <th> elements instead of <td>.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
// The class will be rendered as: <table class='tableClass'>
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithColumnFormatter returns a new writer with the formatter
// registered for the zero based columnIndex.
// If nil is passed as formatter, any previously registered
// formatter for this column is removed.
func (w *Writer) WithColumnFormatter(columnIndex int, formatter CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = maps.Clone(w.columnFormatters)
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

// WithColumnFormatterFunc is a convenience wrapper around
// WithColumnFormatter that accepts a function.
func (w *Writer) WithColumnFormatterFunc(columnIndex int, formatterFunc CellFormatterFunc) *Writer {
	if formatterFunc == nil {
		return w.WithColumnFormatter(columnIndex, nil)
	}
	return w.WithColumnFormatter(columnIndex, formatterFunc)
}

// WithRawColumn returns a new writer that interprets the specified column as raw HTML strings.
// Values in this column will not be HTML-escaped.
//
// Warning: Only use this for trusted content to avoid XSS vulnerabilities.
func (w *Writer) WithRawColumn(columnIndex int) *Writer {
	return w.WithColumnFormatterFunc(columnIndex, func(ctx context.Context, view guigrid.View, row, col int) (string, bool, error) {
		return view.Cell(row, col), true, nil
	})
}

// WithNilValue returns a new writer that writes nilValue for empty cells.
func (w *Writer) WithNilValue(nilValue template.HTML) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

// WithTemplates returns a new writer using the passed templates.
// Nil arguments keep the current template.
//
// The header and footer templates are executed with a TemplateContext,
// the row template with a RowTemplateContext.
func (w *Writer) WithTemplates(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	if headerTemplate != nil {
		mod.headerTemplate = headerTemplate
	}
	if rowTemplate != nil {
		mod.rowTemplate = rowTemplate
	}
	if footerTemplate != nil {
		mod.footerTemplate = footerTemplate
	}
	return mod
}

func (w *Writer) TableClass() string {
	return w.tableClass
}

func (w *Writer) HeaderRow() bool {
	return w.headerRow
}

func (w *Writer) NilValue() template.HTML {
	return w.nilValue
}
