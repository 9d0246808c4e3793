package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3" example:"alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin" example:"user"`
}
