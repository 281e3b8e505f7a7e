package data

import (
	"fmt"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// WorkbookFrame exposes a spreadsheet sheet as a tabular backend. The
// first row names the columns; every following row holds values. Cells
// that parse as integers stay integers, decimals become float64, and
// anything else is kept as the raw string.
type WorkbookFrame struct {
	names   []string
	columns map[string][]any
}

// FrameFromWorkbook reads the named sheet of an open workbook. An empty
// sheet name selects the active sheet.
func FrameFromWorkbook(f *excelize.File, sheet string) (*WorkbookFrame, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &WorkbookFrame{columns: map[string][]any{}}, nil
	}

	header := rows[0]
	frame := &WorkbookFrame{
		names:   make([]string, 0, len(header)),
		columns: make(map[string][]any, len(header)),
	}
	for colIdx, name := range header {
		if name == "" {
			name = "column_" + strconv.Itoa(colIdx+1)
		}
		frame.names = append(frame.names, name)
		column := make([]any, 0, len(rows)-1)
		for _, row := range rows[1:] {
			if colIdx < len(row) {
				column = append(column, parseCell(row[colIdx]))
			} else {
				column = append(column, nil)
			}
		}
		frame.columns[name] = column
	}
	return frame, nil
}

// ColumnNames lists the header names in sheet order.
func (w *WorkbookFrame) ColumnNames() []string { return w.names }

// ColumnValues returns a column as the narrowest slice kind that holds
// every cell: []int64, []float64, or the raw []any mix.
func (w *WorkbookFrame) ColumnValues(name string) (any, bool) {
	column, ok := w.columns[name]
	if !ok {
		return nil, false
	}
	allInt, allNum := true, true
	for _, cell := range column {
		switch cell.(type) {
		case int64:
		case float64:
			allInt = false
		default:
			allInt, allNum = false, false
		}
	}
	switch {
	case allInt:
		ints := make([]int64, len(column))
		for i, cell := range column {
			ints[i] = cell.(int64)
		}
		return ints, true
	case allNum:
		floats := make([]float64, len(column))
		for i, cell := range column {
			switch n := cell.(type) {
			case int64:
				floats[i] = float64(n)
			case float64:
				floats[i] = n
			}
		}
		return floats, true
	}
	return column, true
}

// ConvertFloat64 coerces a mixed column to float64: empty cells become
// NaN and numeric-looking strings are parsed. A cell that resists is a
// failed conversion.
func (w *WorkbookFrame) ConvertFloat64(name string) ([]float64, bool) {
	column, ok := w.columns[name]
	if !ok {
		return nil, false
	}
	floats := make([]float64, len(column))
	for i, cell := range column {
		switch v := cell.(type) {
		case nil:
			floats[i] = math.NaN()
		case int64:
			floats[i] = float64(v)
		case float64:
			floats[i] = v
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, false
			}
			floats[i] = f
		default:
			return nil, false
		}
	}
	return floats, true
}

// parseCell attempts to parse a cell as a number. Returns int64 for
// integers, float64 for decimals, nil for empty cells, or the original
// string.
func parseCell(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
