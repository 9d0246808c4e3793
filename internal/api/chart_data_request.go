package api

// ChartDataRequest 圖表產生請求；chartType 合法值由 chart 套件驗證
// swagger:model api.ChartDataRequest
type ChartDataRequest struct {
	Title     string `json:"title" example:"Sales by Region"`
	XAxis     string `json:"xAxis" validate:"required" example:"Region"`
	YAxis     string `json:"yAxis" validate:"required" example:"Sales"`
	ChartType string `json:"chartType" validate:"required" example:"bar"`
}
