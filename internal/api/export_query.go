package api

// ExportQuery 匯出查詢參數；format 省略時視為 json
// swagger:model api.ExportQuery
type ExportQuery struct {
	XAxis  string `query:"xAxis" validate:"required" example:"Region"`
	YAxis  string `query:"yAxis" validate:"required" example:"Sales"`
	Format string `query:"format" validate:"omitempty,oneof=json csv" example:"csv"`
}
