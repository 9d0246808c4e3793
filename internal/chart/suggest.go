// File: internal/chart/suggest.go
package chart

import (
	"fmt"

	"excelytics/internal/model"
)

// suggestSampleSize 建議引擎的取樣列數
const suggestSampleSize = 10

// classifyThreshold 數值欄位判定門檻：取樣中可解析為數字的比例
// 必須「嚴格大於」0.7 (7/10 判為類別欄，8/10 判為數值欄)
const classifyThreshold = 0.7

// Suggestion 單一圖表建議
type Suggestion struct {
	Type        Type   `json:"type"`
	XAxis       string `json:"xAxis"`
	YAxis       string `json:"yAxis"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Suggestions 欄位分類結果與建議清單
type Suggestions struct {
	NumericColumns []string     `json:"numericColumns"`
	TextColumns    []string     `json:"textColumns"`
	Suggestions    []Suggestion `json:"suggestions"`
	TotalRows      int          `json:"totalRows"`
}

// ClassifyColumns 取樣前 sampleSize 列，將欄位分為數值與類別兩類。
// 只看取樣範圍，數字出現在取樣之外的欄位會被誤判，此為刻意保留的行為。
// nil 與缺漏值不計入取樣分母。
func ClassifyColumns(rows []model.Row, columns []string, sampleSize int) (numeric, text []string) {
	if sampleSize > len(rows) {
		sampleSize = len(rows)
	}
	sample := rows[:sampleSize]

	numeric = make([]string, 0, len(columns))
	text = make([]string, 0, len(columns))
	for _, col := range columns {
		var total, numericCount int
		for _, row := range sample {
			v, ok := row[col]
			if !ok || v == nil {
				continue
			}
			total++
			if numericLike(v) {
				numericCount++
			}
		}
		if float64(numericCount) > float64(total)*classifyThreshold {
			numeric = append(numeric, col)
		} else {
			text = append(text, col)
		}
	}
	return numeric, text
}

// Suggest 依欄位分類推薦圖表。規則固定且依分類順序決定：
//   - 兩個以上數值欄位 → 散佈圖
//   - 至少一個類別欄位加一個數值欄位 → 長條圖與圓餅圖
func Suggest(ds *model.Dataset) *Suggestions {
	numeric, text := ClassifyColumns(ds.Rows, ds.Columns, suggestSampleSize)

	suggestions := make([]Suggestion, 0, 3)
	if len(numeric) >= 2 {
		suggestions = append(suggestions, Suggestion{
			Type:        TypeScatter,
			XAxis:       numeric[0],
			YAxis:       numeric[1],
			Title:       fmt.Sprintf("%s vs %s", numeric[1], numeric[0]),
			Description: "Good for showing correlation between numeric values",
		})
	}
	if len(text) >= 1 && len(numeric) >= 1 {
		suggestions = append(suggestions, Suggestion{
			Type:        TypeBar,
			XAxis:       text[0],
			YAxis:       numeric[0],
			Title:       fmt.Sprintf("%s by %s", numeric[0], text[0]),
			Description: "Good for comparing categories",
		})
		suggestions = append(suggestions, Suggestion{
			Type:        TypePie,
			XAxis:       text[0],
			YAxis:       numeric[0],
			Title:       fmt.Sprintf("Distribution of %s", numeric[0]),
			Description: "Good for showing proportions",
		})
	}

	return &Suggestions{
		NumericColumns: numeric,
		TextColumns:    text,
		Suggestions:    suggestions,
		TotalRows:      len(ds.Rows),
	}
}
