package csvtable

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-guigrid"
)

func TestWriter_WriteView(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		writer   *Writer
		view     guigrid.View
		wantDest string
		wantErr  bool
	}{
		{
			name:     "empty view",
			writer:   NewWriter(),
			view:     &guigrid.StringsView{},
			wantDest: ``,
		},
		{
			name: "simple",
			writer: NewWriter().
				WithHeaderRow(true),
			view: &guigrid.StringsView{
				Cols: []string{"A", "B", "C"},
				Rows: [][]string{
					{"1", "Hello", ""},
					{"2", "world!", "0"},
				},
			},
			wantDest: "" +
				`A;B;C` + "\r\n" +
				`1;Hello;` + "\r\n" +
				`2;world!;0` + "\r\n",
		},
		{
			name: "simple no header",
			writer: NewWriter().
				WithHeaderRow(true).
				WithHeaderRow(false),
			view: &guigrid.StringsView{
				Cols: []string{"A", "B", "C"},
				Rows: [][]string{
					{"1", "Hello"},
					{"2", "world!", "0"},
				},
			},
			wantDest: "" +
				`1;Hello;` + "\r\n" +
				`2;world!;0` + "\r\n",
		},
		{
			name: "simple padded align left",
			writer: NewWriter().
				WithHeaderRow(true).
				WithDelimiter('|').
				WithPadding(AlignLeft),
			view: &guigrid.StringsView{
				Cols: []string{"A", "B", "Blah"},
				Rows: [][]string{
					{"1", "Hello", ""},
					{"123", "world!", "0"},
				},
			},
			wantDest: "" +
				`A  |B     |Blah` + "\r\n" +
				`1  |Hello |    ` + "\r\n" +
				`123|world!|0   ` + "\r\n",
		},
		{
			name: "simple padded align center",
			writer: NewWriter().
				WithHeaderRow(true).
				WithDelimiter('|').
				WithPadding(AlignCenter),
			view: &guigrid.StringsView{
				Cols: []string{"A", "B", "Blah"},
				Rows: [][]string{
					{"1", "Hello", ""},
					{"123", "world!", "0"},
				},
			},
			wantDest: "" +
				` A |  B   |Blah` + "\r\n" +
				` 1 |Hello |    ` + "\r\n" +
				`123|world!| 0  ` + "\r\n",
		},
		{
			name: "simple padded align right",
			writer: NewWriter().
				WithHeaderRow(true).
				WithDelimiter('|').
				WithPadding(AlignRight),
			view: &guigrid.StringsView{
				Cols: []string{"A", "B", "Blah"},
				Rows: [][]string{
					{"1", "Hello", ""},
					{"123", "world!", "0"},
				},
			},
			wantDest: "" +
				`  A|     B|Blah` + "\r\n" +
				`  1| Hello|    ` + "\r\n" +
				`123|world!|   0` + "\r\n",
		},
		{
			name: "comma and quoted fields",
			writer: NewWriter().
				WithHeaderRow(true).
				WithDelimiter(',').
				WithQuoteAllFields(true),
			view: &guigrid.StringsView{
				Cols: []string{" A ", "B", "C"},
				Rows: [][]string{
					{"1", "Hello", ""},
					{"2", "world!", "0"},
				},
			},
			wantDest: "" +
				`" A ","B","C"` + "\r\n" +
				`"1","Hello",""` + "\r\n" +
				`"2","world!","0"` + "\r\n",
		},
		{
			name: "delimiter and quotes in cells",
			writer: NewWriter().
				WithNewLine("\n"),
			view: &guigrid.StringsView{
				Cols: []string{"Text", "Amount"},
				Rows: [][]string{
					{`Say "Hi"`, "1.234,50"},
					{"a;b", "12-"},
				},
			},
			wantDest: "" +
				`Say ""Hi"";1.234,50` + "\n" +
				`"a;b";12-` + "\n",
		},
		{
			name: "nil value",
			writer: NewWriter().
				WithNilValue("-").
				WithNewLine("\n"),
			view: &guigrid.StringsView{
				Cols: []string{"A", "B"},
				Rows: [][]string{{"1", ""}},
			},
			wantDest: "1;-\n",
		},
		{
			name: "filtered view",
			writer: NewWriter().
				WithNewLine("\n"),
			view: &guigrid.FilteredView{
				Source: &guigrid.StringsView{
					Cols: []string{"A", "B"},
					Rows: [][]string{{"1", "x"}, {"2", "y"}, {"3", "z"}},
				},
				RowMapping:    []int{2, 0},
				ColumnMapping: []int{1},
			},
			wantDest: "z\nx\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest bytes.Buffer
			if err := tt.writer.WriteView(ctx, &dest, tt.view); (err != nil) != tt.wantErr {
				t.Errorf("Writer.WriteView() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotDest := dest.String(); gotDest != tt.wantDest {
				t.Errorf("Writer.WriteView() wrote:\n%s\nbut want:\n%s", gotDest, tt.wantDest)
			}
		})
	}
}

func TestWriter_WithFormat(t *testing.T) {
	_, err := NewWriter().WithFormat(&Format{Encoding: "UTF-8", Separator: ",,", Newline: "\n"})
	require.Error(t, err, "multi character separator")

	_, err = NewWriter().WithFormat(nil)
	require.Error(t, err)

	w, err := NewWriter().WithFormat(&Format{Encoding: "UTF-8", Separator: "\t", Newline: "\n"})
	require.NoError(t, err)
	require.Equal(t, '\t', w.Delimiter())
	require.Equal(t, "\n", w.NewLine())

	var dest bytes.Buffer
	err = w.WithHeaderRow(true).WriteView(context.Background(), &dest, &guigrid.StringsView{
		Cols: []string{"ID", "Name"},
		Rows: [][]string{{"1", "Müller"}},
	})
	require.NoError(t, err)
	require.Equal(t, "ID\tName\n1\tMüller\n", dest.String())
}

func TestCharsetEncoder(t *testing.T) {
	enc, err := CharsetEncoder("Windows 1252")
	require.NoError(t, err)

	var dest bytes.Buffer
	err = NewWriter().WithEncoder(enc).WriteView(context.Background(), &dest, &guigrid.StringsView{
		Cols: []string{"Name"},
		Rows: [][]string{{"Müller"}},
	})
	require.NoError(t, err)
	require.Equal(t, []byte("M\xfcller\r\n"), dest.Bytes())

	enc, err = CharsetEncoder("UTF-8")
	require.NoError(t, err)
	data, err := enc.Bytes([]byte("Müller"))
	require.NoError(t, err)
	require.Equal(t, "Müller", string(data))

	_, err = CharsetEncoder("no such charset")
	require.Error(t, err)
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	view := &guigrid.StringsView{Cols: []string{"A"}, Rows: [][]string{{"1"}}}

	var dest bytes.Buffer
	err := NewWriter().WriteView(ctx, &dest, view)
	require.ErrorIs(t, err, context.Canceled)
	err = NewWriter().WithPadding(AlignLeft).WriteView(ctx, &dest, view)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, dest.Len())
}

func TestWriter_WriteFile(t *testing.T) {
	file := fs.File(filepath.Join(t.TempDir(), "grid.csv"))
	view := guigrid.NewStringsView("", [][]string{{"ID", "Name"}, {"1", "Alice"}})

	err := NewWriter().WithHeaderRow(true).WriteFile(context.Background(), file, view)
	require.NoError(t, err)

	data, err := file.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "ID;Name\r\n1;Alice\r\n", string(data))
}
