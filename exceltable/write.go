package exceltable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	fs "github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-guigrid"
)

const defaultSheet = "Sheet1"

// Write writes every view as sheet of a new workbook to dest.
//
// The sheets are named after the view titles,
// invalid characters are replaced by '_' and
// names are truncated to the 31 characters Excel allows.
// Views without or with duplicate titles get numbered sheet names.
// The first row of every sheet contains the bold column titles.
func Write(dest io.Writer, views ...guigrid.View) (err error) {
	if len(views) == 0 {
		return ErrNoViews
	}
	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	used := make(map[string]bool, len(views))
	for i, view := range views {
		sheet := sheetName(view.Title(), i, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeSheet(f, sheet, view, headerStyle); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)
	return f.Write(dest)
}

// WriteFile writes every view as sheet of a new workbook to file.
func WriteFile(file fs.File, views ...guigrid.View) error {
	var buf bytes.Buffer
	err := Write(&buf, views...)
	if err != nil {
		return err
	}
	return file.WriteAll(buf.Bytes())
}

func writeSheet(f *excelize.File, sheet string, view guigrid.View, headerStyle int) error {
	for i, row := range guigrid.ViewStrings(view, true) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for col, str := range row {
			values[col] = str
		}
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SetRowStyle(sheet, 1, 1, headerStyle)
}

var sheetNameReplacer = strings.NewReplacer(
	":", "_",
	`\`, "_",
	"/", "_",
	"?", "_",
	"*", "_",
	"[", "_",
	"]", "_",
)

// sheetName returns a valid and unused sheet name for title
// and marks it as used.
func sheetName(title string, index int, used map[string]bool) string {
	name := strings.Trim(sheetNameReplacer.Replace(strings.TrimSpace(title)), "'")
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	if name == "" || used[strings.ToLower(name)] {
		name = fmt.Sprintf("Sheet%d", index+1)
		for n := index + 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("Sheet%d", n)
		}
	}
	used[strings.ToLower(name)] = true
	return name
}
