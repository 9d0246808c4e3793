package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"excelytics/internal/model"
	"excelytics/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// extractClaims 依序嘗試認證 cookie 與 Authorization bearer header
func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	tokenString := ""
	if cookie, err := c.Cookie(service.CookieName); err == nil && cookie.Value != "" {
		tokenString = cookie.Value
	} else {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
		}
		tokenString = parts[1]
	}

	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證令牌並將 claims 放入 context
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

// RequireRole 回傳要求特定角色的授權中介層。
// 角色不符回傳 403，與未認證的 401 有別。
// 必須掛在 RequireAuth 之後。
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
