package htmltable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/domonda/go-guigrid"
)

// CellFormatter formats the cell of a view at row and col.
// If raw is true, the returned string is HTML
// that will not be escaped by the Writer.
// Returning an error wrapping errors.ErrUnsupported
// makes the Writer fall back to the escaped cell string.
type CellFormatter interface {
	FormatCell(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter with a function.
type CellFormatterFunc func(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error) {
	return f(ctx, view, row, col)
}

var (
	HTMLPreCellFormatter CellFormatterFunc = func(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error) {
		return "<pre>" + template.HTMLEscapeString(view.Cell(row, col)) + "</pre>", true, nil
	}

	HTMLCodeCellFormatter CellFormatterFunc = func(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error) {
		return "<code>" + template.HTMLEscapeString(view.Cell(row, col)) + "</code>", true, nil
	}

	// ValueAsHTMLAnchorCellFormatter escapes the cell value for HTML
	// and returns an HTML anchor element with the
	// value as id and inner text.
	ValueAsHTMLAnchorCellFormatter CellFormatterFunc = func(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error) {
		value := template.HTMLEscapeString(view.Cell(row, col))
		return fmt.Sprintf("<a id='%[1]s'>%[1]s</a>", value), true, nil
	}

	_ CellFormatter = JSONCellFormatter("")
	_ CellFormatter = HTMLSpanClassCellFormatter("")
	_ CellFormatter = Raw("")
)

// JSONCellFormatter formats cells containing JSON
// as JSON indented with the underlying string within a pre element.
// An empty indent formats compact JSON.
// Empty cells are formatted as empty strings.
type JSONCellFormatter string

func (indent JSONCellFormatter) FormatCell(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error) {
	src := view.Cell(row, col)
	if src == "" {
		return "", false, nil
	}
	buf := bytes.NewBufferString("<pre>")
	if indent == "" {
		err = json.Compact(buf, []byte(src))
	} else {
		err = json.Indent(buf, []byte(src), "", string(indent))
	}
	if err != nil {
		return "", false, err
	}
	buf.WriteString("</pre>")
	return buf.String(), true, nil
}

// HTMLSpanClassCellFormatter formats the cell value within an HTML span element
// with the class of the underlying string value.
type HTMLSpanClassCellFormatter string

func (class HTMLSpanClassCellFormatter) FormatCell(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error) {
	text := template.HTMLEscapeString(view.Cell(row, col))
	return fmt.Sprintf("<span class='%s'>%s</span>", class, text), true, nil
}

// Raw formats every cell as the same raw HTML
// independent of the cell value.
type Raw string

func (r Raw) FormatCell(ctx context.Context, view guigrid.View, row, col int) (str string, raw bool, err error) {
	return string(r), true, nil
}
