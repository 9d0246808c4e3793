package api

import (
	"time"

	"excelytics/internal/model"
)

// UserResponse 使用者資料，不含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Username  string     `json:"username" example:"alice"`
	Email     string     `json:"email" example:"alice@example.com"`
	Role      model.Role `json:"role" example:"user"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewUserResponse 由 model.User 建立回應
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
