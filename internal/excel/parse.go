// File: internal/excel/parse.go
package excel

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"excelytics/internal/model"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet 工作表沒有標題列或資料列，無法推導欄位
var ErrEmptySheet = errors.New("sheet has no data rows")

// Parse 讀取工作簿第一個工作表，第一列為欄位名稱，其餘列轉為 Row。
// 缺少的儲存格以空字串補齊，超出標題寬度的儲存格忽略。
// 純轉換，無任何副作用。
func Parse(data []byte) ([]string, []model.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("Parse: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("Parse: %w", ErrEmptySheet)
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("Parse: %w", err)
	}
	if len(cells) < 2 {
		return nil, nil, fmt.Errorf("Parse: %w", ErrEmptySheet)
	}

	// 標題列決定欄位名稱與順序
	header := cells[0]
	columns := make([]string, 0, len(header))
	colIdx := make([]int, 0, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		columns = append(columns, name)
		colIdx = append(colIdx, i)
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("Parse: %w", ErrEmptySheet)
	}

	rows := make([]model.Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(model.Row, len(columns))
		for j, name := range columns {
			idx := colIdx[j]
			if idx < len(line) {
				row[name] = parseValue(line[idx])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return columns, rows, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
