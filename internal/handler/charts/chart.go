package charts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"excelytics/internal/api"
	"excelytics/internal/cache"
	"excelytics/internal/chart"
	"excelytics/internal/database"
	"excelytics/internal/insights"
	"excelytics/internal/middleware"
	"excelytics/internal/service"
	"excelytics/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// insightsTimeout 外部文字生成服務的呼叫上限，避免請求懸掛
const insightsTimeout = 30 * time.Second

var (
	getDatasetByIDForOwner = store.GetDatasetByIDForOwner
	buildChart             = chart.Build
	suggestCharts          = chart.Suggest
	exportChart            = chart.Export
	generateInsights       = insights.Generate
)

func ownerClaims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims.UserID != 0
}

// @Summary     Generate chart data
// @Description 將資料集投影為圖表資料點 (x 為 falsy 或 y 非數字的列會被過濾)
// @Tags        charts
// @Accept      json
// @Produce     json
// @Param       fileId  path string               true "資料集 ID"
// @Param       request body api.ChartDataRequest true "圖表設定"
// @Success     200 {object} api.ChartDataResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /charts/data/{fileId} [post]
func DataHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ownerClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.ChartDataRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		// 類型錯誤在查詢前就擋下，不碰資料
		if !chart.Type(req.ChartType).Valid() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: chart.ErrInvalidChartType.Error()})
		}

		id, err := uuid.Parse(c.Param("fileId"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
		}
		ds, err := getDatasetByIDForOwner(c.Request().Context(), db, id, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		result, err := buildChart(ds, req.XAxis, req.YAxis, chart.Type(req.ChartType), req.Title)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.ChartDataResponse{
			FileID:      ds.ID.String(),
			Filename:    ds.Filename,
			Title:       result.Title,
			XAxis:       result.XAxis,
			YAxis:       result.YAxis,
			ChartType:   result.ChartType,
			Data:        result.Data,
			DataPoints:  result.DataPoints,
			GeneratedAt: result.GeneratedAt,
		})
	}
}

// @Summary     Get chart suggestions
// @Description 取樣前 10 列分類欄位並推薦圖表；結果快取 10 分鐘
// @Tags        charts
// @Produce     json
// @Param       fileId path string true "資料集 ID"
// @Success     200 {object} chart.Suggestions
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /charts/suggestions/{fileId} [get]
func SuggestionsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ownerClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := uuid.Parse(c.Param("fileId"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
		}

		// 先做擁有者檢查再讀快取，避免把別人的快取內容回給非擁有者
		ds, err := getDatasetByIDForOwner(c.Request().Context(), db, id, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		key := cache.SuggestionsKey(id.String())
		if cch != nil {
			if raw, err := cch.Get(c.Request().Context(), key).Result(); err == nil && raw != "" {
				return c.JSONBlob(http.StatusOK, []byte(raw))
			}
		}

		suggestions := suggestCharts(ds)
		payload, err := json.Marshal(suggestions)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if cch != nil {
			if err := cch.Set(c.Request().Context(), key, payload, cache.SuggestionsTTL).Err(); err != nil {
				c.Logger().Warnf("failed to cache suggestions: %v", err)
			}
		}
		return c.JSONBlob(http.StatusOK, payload)
	}
}

// @Summary     Export chart data
// @Description 匯出過濾後的資料點；CSV 以附件下載，且不做逗號跳脫 (既有限制)
// @Tags        charts
// @Produce     json
// @Produce     text/csv
// @Param       fileId path  string true  "資料集 ID"
// @Param       xAxis  query string true  "X 軸欄位"
// @Param       yAxis  query string true  "Y 軸欄位"
// @Param       format query string false "json 或 csv (預設 json)"
// @Success     200 {array} object
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /charts/data-export/{fileId} [get]
func ExportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ownerClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var q api.ExportQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if q.Format == "" {
			q.Format = string(chart.FormatJSON)
		}

		id, err := uuid.Parse(c.Param("fileId"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
		}
		ds, err := getDatasetByIDForOwner(c.Request().Context(), db, id, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		payload, contentType, err := exportChart(ds, q.XAxis, q.YAxis, chart.Format(q.Format))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if chart.Format(q.Format) == chart.FormatCSV {
			c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="chart-data.csv"`)
		}
		return c.Blob(http.StatusOK, contentType, payload)
	}
}

// @Summary     Generate AI insights
// @Description 取樣資料送往文字生成服務，回傳分析洞察 (30 秒逾時)
// @Tags        charts
// @Produce     json
// @Param       fileId path string true "資料集 ID"
// @Success     200 {object} api.InsightsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /charts/insights/{fileId} [post]
func InsightsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ownerClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := uuid.Parse(c.Param("fileId"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
		}
		ds, err := getDatasetByIDForOwner(c.Request().Context(), db, id, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), insightsTimeout)
		defer cancel()
		result, err := generateInsights(ctx, ds.Rows, ds.Columns, "excel")
		if err != nil {
			c.Logger().Errorf("insights generation failed: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.InsightsResponse{
			FileID:      ds.ID.String(),
			Filename:    ds.Filename,
			Insights:    result,
			GeneratedAt: time.Now().UTC(),
		})
	}
}
