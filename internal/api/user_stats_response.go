package api

import "excelytics/internal/model"

// UserStatsResponse 管理員統計回應
// swagger:model api.UserStatsResponse
type UserStatsResponse struct {
	TotalUsers int               `json:"totalUsers" example:"10"`
	TotalFiles int               `json:"totalFiles" example:"37"`
	UserStats  []model.UserStats `json:"userStats"`
}
