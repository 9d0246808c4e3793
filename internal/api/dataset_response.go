package api

import (
	"time"

	"excelytics/internal/model"
)

// DatasetResponse 完整資料集內容
// swagger:model api.DatasetResponse
type DatasetResponse struct {
	ID         string      `json:"id"`
	Filename   string      `json:"filename" example:"sales_report_2025.xlsx"`
	Columns    []string    `json:"columns"`
	Data       []model.Row `json:"data"`
	UploadedAt time.Time   `json:"uploadedAt"`
}

// DatasetSummaryResponse 清單視圖
// swagger:model api.DatasetSummaryResponse
type DatasetSummaryResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename" example:"sales_report_2025.xlsx"`
	UploadedAt time.Time `json:"uploadedAt"`
}
