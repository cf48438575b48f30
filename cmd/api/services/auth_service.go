package services

import (
	"context"
	"fmt"
	"strings"

	"blog-backend/cmd/api/auth"
	"blog-backend/models"
)

// JwtService issues and validates access tokens.
type JwtService interface {
	GenerateToken(user models.UserInfo) (string, error)
	ValidateToken(token string) (*models.UserInfo, error)
}

// Account is a user allowed to log in. PasswordHash is a bcrypt hash.
type Account struct {
	Username     string
	PasswordHash string
	IsAdmin      bool
}

// AuthService exchanges credentials for tokens against a fixed set of accounts.
type AuthService struct {
	accounts map[string]Account
	jwt      JwtService
	// dummyHash keeps the cost of a failed lookup equal to a wrong password.
	dummyHash string
}

func NewAuthService(accounts []Account, jwt JwtService) *AuthService {
	byName := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		name := strings.ToLower(strings.TrimSpace(a.Username))
		if name == "" || a.PasswordHash == "" {
			continue
		}
		byName[name] = a
	}
	dummy, _ := auth.HashPassword("blog-backend-dummy-password")
	return &AuthService{accounts: byName, jwt: jwt, dummyHash: dummy}
}

// Login returns a token for valid credentials and ErrInvalidCredentials otherwise.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	account, ok := s.accounts[strings.ToLower(username)]
	if !ok {
		auth.CheckPassword(s.dummyHash, req.Password)
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	info := models.UserInfo{Username: account.Username, IsAdmin: account.IsAdmin}
	token, err := s.jwt.GenerateToken(info)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.LoginResponse{Token: token, UserInfo: info}, nil
}

// ValidateToken resolves an access token to the caller's identity. The router
// uses it to gate authenticated routes.
func (s *AuthService) ValidateToken(token string) (*models.UserInfo, error) {
	return s.jwt.ValidateToken(token)
}
