// File: internal/model/dataset.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Row 單列資料，鍵為欄位名稱，值為儲存格內容 (string、number 或 nil)。
// 每次上傳的欄位集合可能不同，因此保持鬆散結構。
type Row map[string]any

type Dataset struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"userId"`
	Filename   string    `db:"filename" json:"filename"`
	Columns    []string  `db:"columns" json:"columns"`
	Rows       []Row     `db:"data" json:"data"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploadedAt"`
}

// DatasetSummary 清單視圖，不含欄位與資料內容
type DatasetSummary struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Filename   string    `db:"filename" json:"filename"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploadedAt"`
}
