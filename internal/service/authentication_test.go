package service

import (
	"context"
	"testing"
	"time"

	"excelytics/internal/model"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)
	require.NoError(t, ComparePassword(hash, "s3cret"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	user := model.User{ID: 1, Email: "a@b.c", PasswordHash: hash, Role: model.RoleUser}

	got, err := AuthenticateUser(context.Background(), user, "s3cret")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = AuthenticateUser(context.Background(), user, "wrong")
	require.Error(t, err)
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := model.User{ID: 42, Role: model.RoleAdmin}

	token, err := IssueAccessToken(user, TokenTTL)
	require.NoError(t, err)

	claims, err := VerifyAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, 42, claims.UserID)
	require.Equal(t, model.RoleAdmin, claims.Role)
	require.Equal(t, "42", claims.Subject)
	require.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyAccessTokenErrors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := IssueAccessToken(model.User{ID: 1}, TokenTTL)
		require.Error(t, err)
		_, err = VerifyAccessToken("whatever")
		require.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		_, err := VerifyAccessToken("not.a.jwt")
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		token, err := IssueAccessToken(model.User{ID: 1}, -time.Minute)
		require.NoError(t, err)
		_, err = VerifyAccessToken(token)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		token, err := IssueAccessToken(model.User{ID: 1}, TokenTTL)
		require.NoError(t, err)
		t.Setenv("JWT_SECRET", "other-secret")
		_, err = VerifyAccessToken(token)
		require.Error(t, err)
	})
}

func TestAuthCookie(t *testing.T) {
	t.Run("default env not secure", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		c := NewAuthCookie("tok", TokenTTL)
		require.Equal(t, CookieName, c.Name)
		require.Equal(t, "tok", c.Value)
		require.True(t, c.HttpOnly)
		require.False(t, c.Secure)
		require.Equal(t, int(TokenTTL.Seconds()), c.MaxAge)
	})

	t.Run("production secure", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		c := NewAuthCookie("tok", TokenTTL)
		require.True(t, c.Secure)
	})

	t.Run("clear cookie expires immediately", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		c := ClearAuthCookie()
		require.Equal(t, CookieName, c.Name)
		require.Empty(t, c.Value)
		require.Equal(t, -1, c.MaxAge)
	})
}
