package csvtable

import (
	"bytes"
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-guigrid"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// PassthroughEncoder returns an Encoder that returns the passed data unchanged.
func PassthroughEncoder() Encoder {
	return EncoderFunc(func(data []byte) ([]byte, error) {
		return data, nil
	})
}

// CharsetEncoder returns an Encoder that converts UTF-8
// to the named character encoding, for example "Windows 1252".
// For "UTF-8" a PassthroughEncoder is returned.
func CharsetEncoder(name string) (Encoder, error) {
	if name == "UTF-8" {
		return PassthroughEncoder(), nil
	}
	enc, err := charset.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	return EncoderFunc(enc.Encode), nil
}

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes a guigrid.View as CSV.
// The With* methods return modified copies of the Writer.
type Writer struct {
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

func NewWriter() *Writer {
	return &Writer{
		padding:          NoPadding,
		headerRow:        false,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		delimiter:        ';',
		newLine:          "\r\n",
		encoder:          nil,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes the view to dest as formatted as CSV.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view guigrid.View) error {
	if w.padding != NoPadding {
		return w.writeViewPadded(ctx, dest, view)
	}

	if w.headerRow {
		err := w.writeView(ctx, dest, guigrid.NewHeaderViewFrom(view))
		if err != nil {
			return err
		}
	}
	return w.writeView(ctx, dest, view)
}

// WriteFile writes the view as CSV to file.
func (w *Writer) WriteFile(ctx context.Context, file fs.File, view guigrid.View) error {
	var buf bytes.Buffer
	err := w.WriteView(ctx, &buf, view)
	if err != nil {
		return err
	}
	return file.WriteAll(buf.Bytes())
}

func (w *Writer) writeView(ctx context.Context, dest io.Writer, view guigrid.View) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := w.writeRow(rowBuf, view, row)
		if err != nil {
			return err
		}
		_, err = dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

func (w *Writer) writeRow(rowBuf *bytes.Buffer, view guigrid.View, row int) error {
	for col := range view.Columns() {
		if col > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		rowBuf.WriteString(w.escapeString(view.Cell(row, col)))
	}
	rowBuf.WriteString(w.newLine)
	return w.encodeRow(rowBuf)
}

// encodeRow reads, encodes, and writes back the buffered row
func (w *Writer) encodeRow(rowBuf *bytes.Buffer) error {
	if w.encoder == nil {
		return nil
	}
	encoded, err := w.encoder.Bytes(rowBuf.Bytes())
	if err != nil {
		return err
	}
	rowBuf.Reset()
	_, err = rowBuf.Write(encoded)
	return err
}

func (w *Writer) writeViewPadded(ctx context.Context, dest io.Writer, view guigrid.View) error {
	rows := w.ViewStrings(view)

	// Collect column widths
	colRuneCount := guigrid.StringColumnWidths(rows, len(view.Columns()))

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col, str := range rows[row] {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			var (
				padTotal = colRuneCount[col] - utf8.RuneCountInString(str)
				padLeft  = 0
				padRight = 0
			)
			switch w.padding {
			case AlignLeft:
				padRight = padTotal
			case AlignRight:
				padLeft = padTotal
			case AlignCenter:
				padLeft = padTotal / 2
				padRight = (padTotal + 1) / 2
			}
			rowBuf.WriteString(strings.Repeat(" ", padLeft))
			rowBuf.WriteString(str)
			rowBuf.WriteString(strings.Repeat(" ", padRight))
		}
		rowBuf.WriteString(w.newLine)

		err := w.encodeRow(rowBuf)
		if err != nil {
			return err
		}
		_, err = dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}

	return nil
}

// ViewStrings returns the view's escaped cell strings,
// prepended by the header row if configured.
func (w *Writer) ViewStrings(view guigrid.View) [][]string {
	rows := guigrid.ViewStrings(view, w.headerRow)
	for _, row := range rows {
		for col, str := range row {
			row[col] = w.escapeString(str)
		}
	}
	return rows
}

func (w *Writer) escapeString(str string) string {
	if str == "" {
		str = w.nilValue
	}
	// Just in case remove all \r,
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsRune(str, '\n'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return strings.ReplaceAll(str, `"`, w.escapeQuotes)
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithFormat returns a new writer using the separator,
// newline and encoding of format.
func (w *Writer) WithFormat(format *Format) (*Writer, error) {
	err := format.Validate()
	if err != nil {
		return nil, err
	}
	encoder, err := CharsetEncoder(format.Encoding)
	if err != nil {
		return nil, err
	}
	mod := w.clone()
	mod.delimiter, _ = utf8.DecodeRuneInString(format.Separator)
	mod.newLine = format.Newline
	mod.encoder = encoder
	return mod, nil
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

// WithNilValue returns a new writer that writes nilValue for empty cells.
func (w *Writer) WithNilValue(nilValue string) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer) HeaderRow() bool {
	return w.headerRow
}

func (w *Writer) QuoteAllFields() bool {
	return w.quoteAllFields
}

func (w *Writer) QuoteEmptyFields() bool {
	return w.quoteEmptyFields
}

func (w *Writer) Delimiter() rune {
	return w.delimiter
}

func (w *Writer) EscapeQuotes() string {
	return w.escapeQuotes
}

func (w *Writer) NilValue() string {
	return w.nilValue
}

func (w *Writer) NewLine() string {
	return w.newLine
}

func (w *Writer) Encoder() Encoder {
	return w.encoder
}
