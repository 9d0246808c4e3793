// File: internal/chart/export.go
package chart

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"excelytics/internal/model"
)

// Format 匯出格式列舉
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Export 套用與 Build 相同的投影與過濾規則，但以原始欄位名稱為鍵輸出。
// 回傳內容與 Content-Type。format 非 csv 時一律輸出 JSON。
// CSV 不對內嵌逗號或引號做任何跳脫，此為已知限制，刻意不修正。
func Export(ds *model.Dataset, xAxis, yAxis string, format Format) ([]byte, string, error) {
	points := projectPoints(ds.Rows, xAxis, yAxis)

	if format == FormatCSV {
		lines := make([]string, 0, len(points)+1)
		lines = append(lines, fmt.Sprintf("%s,%s", xAxis, yAxis))
		for _, p := range points {
			lines = append(lines, fmt.Sprintf("%s,%s", formatCell(p.X), formatFloat(p.Y)))
		}
		return []byte(strings.Join(lines, "\n")), "text/csv", nil
	}

	out := make([]map[string]any, 0, len(points))
	for _, p := range points {
		out = append(out, map[string]any{xAxis: p.X, yAxis: p.Y})
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("Export: %w", err)
	}
	return payload, "application/json", nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatFloat(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return fmt.Sprintf("%v", v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
