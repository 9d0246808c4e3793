// File: internal/service/cookie.go
package service

import (
	"net/http"
	"os"
	"time"
)

// CookieName 存放存取令牌的 cookie 名稱
const CookieName = "token"

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}

// NewAuthCookie 建立帶令牌的認證 cookie
// HttpOnly + SameSite=Strict，production 環境加上 Secure
func NewAuthCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secureCookies(),
	}
}

// ClearAuthCookie 建立立即過期的空 cookie，用於登出
func ClearAuthCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secureCookies(),
	}
}
