package router

import (
	"github.com/labstack/echo/v4"

	"excelytics/internal/cache"
	"excelytics/internal/database"
	"excelytics/internal/handler"
	"excelytics/internal/handler/admin"
	"excelytics/internal/handler/auth"
	"excelytics/internal/handler/charts"
	"excelytics/internal/handler/datasets"
	"excelytics/internal/middleware"
	"excelytics/internal/model"
	"excelytics/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp *worker.Pool) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, cch), middleware.RequireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))
	api.POST("/auth/logout", auth.LogoutHandler())
	api.GET("/auth/profile", auth.ProfileHandler(db), middleware.RequireAuth)

	// 試算表上傳與資料集 CRUD
	apiExcel := api.Group("/excel", middleware.RequireAuth)
	apiExcel.POST("/upload", datasets.UploadHandler(db, cch, wp))
	apiExcel.GET("", datasets.ListHandler(db))
	apiExcel.GET("/:id", datasets.GetHandler(db))
	apiExcel.DELETE("/:id", datasets.DeleteHandler(db, cch))

	// 圖表投影、建議、匯出與 AI 洞察
	apiCharts := api.Group("/charts", middleware.RequireAuth)
	apiCharts.POST("/data/:fileId", charts.DataHandler(db))
	apiCharts.GET("/suggestions/:fileId", charts.SuggestionsHandler(db, cch))
	apiCharts.GET("/data-export/:fileId", charts.ExportHandler(db))
	apiCharts.POST("/insights/:fileId", charts.InsightsHandler(db))

	// 管理員專屬
	apiAdmin := api.Group("/admin", middleware.RequireAuth, middleware.RequireRole(model.RoleAdmin))
	apiAdmin.GET("/get-all-users", admin.ListUsersHandler(db))
	apiAdmin.DELETE("/delete-user/:id", admin.DeleteUserHandler(db))
	apiAdmin.GET("/user-stats", admin.StatsHandler(db))
}
