package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/cmd/api/auth"
	"blog-backend/models"
)

func newAuthService(t *testing.T) (*AuthService, *auth.JWTManager) {
	t.Helper()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	readerHash, err := auth.HashPassword("reader pass")
	require.NoError(t, err)

	jwt, err := auth.NewJWTManager("test-secret", "test-issuer", time.Hour)
	require.NoError(t, err)

	return NewAuthService([]Account{
		{Username: "Admin", PasswordHash: hash, IsAdmin: true},
		{Username: "reader", PasswordHash: readerHash},
		{Username: "broken"},
	}, jwt), jwt
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	svc, jwt := newAuthService(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserInfo{Username: "Admin", IsAdmin: true}, resp.UserInfo)

	info, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.True(t, info.IsAdmin)

	info, err = svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "Admin", info.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "nobody", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "broken", Password: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "broken", Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestReaderTokenIsNotAdmin(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "reader", Password: "reader pass"})
	require.NoError(t, err)
	assert.False(t, resp.UserInfo.IsAdmin)

	info, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.False(t, info.IsAdmin)

	_, err = svc.ValidateToken("garbage")
	assert.Error(t, err)
}
