package api

// swagger:model api.UploadResponse
type UploadResponse struct {
	Message string   `json:"message" example:"File uploaded"`
	Columns []string `json:"columns"`
	FileID  string   `json:"fileId" example:"7f1a3c1e-9a3b-4a6f-8f21-2f4f1f6f9b0a"`
}
