// File: internal/chart/chart.go
package chart

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"excelytics/internal/model"
)

// Type 圖表類型列舉
type Type string

const (
	TypeBar     Type = "bar"
	TypeLine    Type = "line"
	TypePie     Type = "pie"
	TypeScatter Type = "scatter"
	TypeArea    Type = "area"
	TypeColumn  Type = "column"
	Type3DBar   Type = "3d-bar"
	Type3DPie   Type = "3d-pie"
)

// Valid 回傳是否為支援的圖表類型
func (t Type) Valid() bool {
	switch t {
	case TypeBar, TypeLine, TypePie, TypeScatter, TypeArea, TypeColumn, Type3DBar, Type3DPie:
		return true
	}
	return false
}

var (
	ErrInvalidChartType = errors.New("invalid chart type")
	ErrNoData           = errors.New("no data available to generate chart")
	ErrInvalidAxis      = errors.New("invalid xAxis or yAxis column")
)

// Point 單一資料點；X 保留原始儲存格值，Y 為數值化結果
type Point struct {
	X any     `json:"x"`
	Y float64 `json:"y"`
}

// Result 圖表產生結果
type Result struct {
	Title       string    `json:"title"`
	XAxis       string    `json:"xAxis"`
	YAxis       string    `json:"yAxis"`
	ChartType   Type      `json:"chartType"`
	Data        []Point   `json:"data"`
	DataPoints  int       `json:"dataPoints"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Build 將資料集投影為圖表資料點。
// 過濾規則沿用既有語意：x 為 falsy (nil、空字串、數字 0) 的列被丟棄，
// 因此合法的數值 x=0 也會被丟棄；y 無法解析為數字的列被丟棄。
func Build(ds *model.Dataset, xAxis, yAxis string, typ Type, title string) (*Result, error) {
	if !typ.Valid() {
		return nil, ErrInvalidChartType
	}
	if len(ds.Rows) == 0 {
		return nil, ErrNoData
	}
	if !hasColumn(ds.Columns, xAxis) || !hasColumn(ds.Columns, yAxis) {
		return nil, ErrInvalidAxis
	}

	points := projectPoints(ds.Rows, xAxis, yAxis)
	if title == "" {
		title = yAxis + " vs " + xAxis
	}

	return &Result{
		Title:       title,
		XAxis:       xAxis,
		YAxis:       yAxis,
		ChartType:   typ,
		Data:        points,
		DataPoints:  len(points),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

func projectPoints(rows []model.Row, xAxis, yAxis string) []Point {
	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		xv := row[xAxis]
		yv, ok := coerceFloat(row[yAxis])
		if !truthy(xv) || !ok || math.IsNaN(yv) {
			continue
		}
		points = append(points, Point{X: xv, Y: yv})
	}
	return points
}

// truthy 模擬原始過濾語意：nil、空字串與數字 0 視為 false
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int64:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	return true
}

// coerceFloat 將儲存格值轉為數字；字串取可解析的最長前綴
func coerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case string:
		return parseFloatPrefix(x)
	}
	return 0, false
}

// parseFloatPrefix 解析字串開頭的十進位數字 (含小數與指數)，
// 例如 "12abc" 解析為 12；完全無法解析時回傳 false。
func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	for i := 1; i <= len(s); i++ {
		if _, err := strconv.ParseFloat(s[:i], 64); err == nil {
			end = i
		}
	}
	if end == 0 {
		return 0, false
	}
	f, _ := strconv.ParseFloat(s[:end], 64)
	return f, true
}

// numericLike 回傳值是否可視為數字 (分類取樣用)
func numericLike(v any) bool {
	f, ok := coerceFloat(v)
	return ok && !math.IsNaN(f)
}
