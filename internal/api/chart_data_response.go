package api

import (
	"time"

	"excelytics/internal/chart"
)

// ChartDataResponse 圖表資料回應
// swagger:model api.ChartDataResponse
type ChartDataResponse struct {
	FileID      string        `json:"fileId"`
	Filename    string        `json:"filename" example:"sales_report_2025.xlsx"`
	Title       string        `json:"title" example:"Sales vs Region"`
	XAxis       string        `json:"xAxis" example:"Region"`
	YAxis       string        `json:"yAxis" example:"Sales"`
	ChartType   chart.Type    `json:"chartType" example:"bar"`
	Data        []chart.Point `json:"data"`
	DataPoints  int           `json:"dataPoints" example:"42"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
