package admin

import (
	"errors"
	"net/http"
	"strconv"

	"excelytics/internal/api"
	"excelytics/internal/database"
	"excelytics/internal/model"
	"excelytics/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsers             = store.ListUsers
	deleteUser            = store.DeleteUser
	deleteDatasetsByOwner = store.DeleteDatasetsByOwner
	countUsersByRoleNot   = store.CountUsersByRoleNot
	countDatasets         = store.CountDatasets
	listUserStats         = store.ListUserStats
)

// @Summary     List all users
// @Description 列出全部使用者 (不含密碼哈希)，需要 admin 角色
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/get-all-users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		out := make([]api.UserResponse, 0, len(users))
		for i := range users {
			out = append(out, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Delete a user
// @Description 先刪除該使用者全部資料集再刪除使用者本身 (兩步、非交易)
// @Tags        admin
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/delete-user/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		// 先清掉資料集再刪使用者；中間失敗會留下孤兒狀態，接受此窄不一致窗口
		deleted, err := deleteDatasetsByOwner(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Infof("deleted %d datasets for user %d", deleted, userID)

		if err := deleteUser(c.Request().Context(), db, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted successfully"})
	}
}

// @Summary     Aggregate user statistics
// @Description 回傳非管理員使用者數、檔案總數與每位使用者的檔案數量
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.UserStatsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/user-stats [get]
func StatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		totalUsers, err := countUsersByRoleNot(c.Request().Context(), db, model.RoleAdmin)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		totalFiles, err := countDatasets(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		stats, err := listUserStats(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.UserStatsResponse{
			TotalUsers: totalUsers,
			TotalFiles: totalFiles,
			UserStats:  stats,
		})
	}
}
