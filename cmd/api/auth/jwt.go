package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog-backend/models"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultIssuer   = "blog-backend"
	DefaultTokenTTL = 24 * time.Hour
)

// JWTManager issues and validates HS256 tokens signed with a single secret.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManager(secret, issuer string, ttl time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

func (m *JWTManager) Sign(username, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iss":  m.issuer,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates signature, expiry and issuer and returns the sub and role claims.
func (m *JWTManager) Parse(tokenString string) (string, string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", "", fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return "", "", fmt.Errorf("token missing sub claim")
	}

	return sub, role, nil
}

// GenerateToken issues a token for user. Admins get the admin role claim.
func (m *JWTManager) GenerateToken(user models.UserInfo) (string, error) {
	role := RoleUser
	if user.IsAdmin {
		role = RoleAdmin
	}
	return m.Sign(user.Username, role)
}

// ValidateToken parses token and returns the identity it carries.
func (m *JWTManager) ValidateToken(token string) (*models.UserInfo, error) {
	sub, role, err := m.Parse(token)
	if err != nil {
		return nil, err
	}
	return &models.UserInfo{Username: sub, IsAdmin: role == RoleAdmin}, nil
}
