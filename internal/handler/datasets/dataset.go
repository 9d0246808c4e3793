package datasets

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"excelytics/internal/api"
	"excelytics/internal/cache"
	"excelytics/internal/chart"
	"excelytics/internal/database"
	"excelytics/internal/excel"
	"excelytics/internal/middleware"
	"excelytics/internal/model"
	"excelytics/internal/service"
	"excelytics/internal/store"
	"excelytics/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxUploadSize 上傳檔案大小上限
const maxUploadSize = 10 << 20 // 10MB

var (
	parseWorkbook             = excel.Parse
	createDataset             = store.CreateDataset
	listDatasetsByOwner       = store.ListDatasetsByOwner
	getDatasetByIDForOwner    = store.GetDatasetByIDForOwner
	deleteDatasetByIDForOwner = store.DeleteDatasetByIDForOwner
)

// @Summary     Upload a spreadsheet
// @Description 上傳 .xls/.xlsx 檔案，解析為資料集後儲存。重新上傳永遠新增，不會覆寫。
// @Tags        excel
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "試算表檔案 (最大 10MB)"
// @Success     200 {object} api.UploadResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /excel/upload [post]
func UploadHandler(db database.DB, cch cache.Cache, wp *worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "file is required"})
		}
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if ext != ".xls" && ext != ".xlsx" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "only .xls and .xlsx files are allowed"})
		}
		if fileHeader.Size > maxUploadSize {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "file exceeds the 10MB limit"})
		}

		src, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		defer src.Close()
		buf, err := io.ReadAll(src)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		columns, rows, err := parseWorkbook(buf)
		if err != nil {
			c.Logger().Errorf("upload parse failed: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		ds, err := createDataset(c.Request().Context(), db, &model.Dataset{
			UserID:   claims.UserID,
			Filename: fileHeader.Filename,
			Columns:  columns,
			Rows:     rows,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// 背景預熱圖表建議快取，佇列滿或失敗都不影響本次請求
		if wp != nil && !wp.Submit(func() { prewarmSuggestions(cch, ds) }) {
			c.Logger().Warnf("suggestions prewarm skipped: worker queue full")
		}

		return c.JSON(http.StatusOK, api.UploadResponse{
			Message: "File uploaded",
			Columns: columns,
			FileID:  ds.ID.String(),
		})
	}
}

func prewarmSuggestions(cch cache.Cache, ds *model.Dataset) {
	if cch == nil {
		return
	}
	payload, err := json.Marshal(chart.Suggest(ds))
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cch.Set(ctx, cache.SuggestionsKey(ds.ID.String()), payload, cache.SuggestionsTTL)
}

// @Summary     List uploaded datasets
// @Description 回傳目前使用者的資料集摘要清單，最新上傳在前
// @Tags        excel
// @Produce     json
// @Success     200 {array} api.DatasetSummaryResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /excel [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		summaries, err := listDatasetsByOwner(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		out := make([]api.DatasetSummaryResponse, 0, len(summaries))
		for _, s := range summaries {
			out = append(out, api.DatasetSummaryResponse{
				ID:         s.ID.String(),
				Filename:   s.Filename,
				UploadedAt: s.UploadedAt,
			})
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Get a dataset
// @Description 取得完整資料集內容，僅限擁有者
// @Tags        excel
// @Produce     json
// @Param       id path string true "資料集 ID"
// @Success     200 {object} api.DatasetResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /excel/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			// 格式錯誤的 id 與不存在的 id 同樣回 404，不洩漏資訊
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
		}

		ds, err := getDatasetByIDForOwner(c.Request().Context(), db, id, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.DatasetResponse{
			ID:         ds.ID.String(),
			Filename:   ds.Filename,
			Columns:    ds.Columns,
			Data:       ds.Rows,
			UploadedAt: ds.UploadedAt,
		})
	}
}

// @Summary     Delete a dataset
// @Description 刪除資料集並清除其建議快取，僅限擁有者
// @Tags        excel
// @Produce     json
// @Param       id path string true "資料集 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /excel/{id} [delete]
func DeleteHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
		}

		if err := deleteDatasetByIDForOwner(c.Request().Context(), db, id, claims.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "file not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if cch != nil {
			if err := cch.Del(c.Request().Context(), cache.SuggestionsKey(id.String())).Err(); err != nil {
				c.Logger().Warnf("failed to invalidate suggestions cache: %v", err)
			}
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "File deleted successfully"})
	}
}
