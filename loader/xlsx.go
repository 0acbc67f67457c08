package loader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readWorkbook returns the header and data rows of one sheet. Cells are read
// raw so numeric durations keep their stored precision.
func readWorkbook(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open workbook %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("%w: workbook %s has no sheets", ErrSchema, path)
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil, fmt.Errorf("%w: sheet %q not found in %s", ErrSchema, sheet, path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read sheet %q: %w", ErrIO, sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	// GetRows drops trailing empty cells; pad the header to the used range so
	// blank trailing header cells still get positional names.
	header := rows[0]
	if width := sheetWidth(f, sheet); width > len(header) {
		header = append(header, make([]string, width-len(header))...)
	}

	return header, rows[1:], nil
}

// sheetWidth returns the column count of the sheet's used range, or 0 when
// the workbook does not record one.
func sheetWidth(f *excelize.File, sheet string) int {
	ref, err := f.GetSheetDimension(sheet)
	if err != nil || ref == "" {
		return 0
	}
	end := ref
	if i := strings.LastIndexByte(ref, ':'); i >= 0 {
		end = ref[i+1:]
	}
	col, _, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return 0
	}

	return col
}
