package exceltable

import (
	"errors"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptySheet indicates that an Excel sheet contains no data after
	// removing empty rows and columns.
	//
	// Empty sheets are skipped when reading multiple sheets.
	ErrEmptySheet = errors.New("empty sheet")

	// ErrNoViews is returned when writing a workbook without any view.
	ErrNoViews = errors.New("no views to write")
)

// ErrSheetNotExist is re-exported from excelize and indicates that a requested
// sheet name does not exist in the Excel file.
type ErrSheetNotExist = excelize.ErrSheetNotExist
