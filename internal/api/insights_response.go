package api

import "time"

// InsightsResponse AI 洞察回應；Insights 內容依上游回傳而定
// swagger:model api.InsightsResponse
type InsightsResponse struct {
	FileID      string         `json:"fileId"`
	Filename    string         `json:"filename" example:"sales_report_2025.xlsx"`
	Insights    map[string]any `json:"insights"`
	GeneratedAt time.Time      `json:"generatedAt"`
}
