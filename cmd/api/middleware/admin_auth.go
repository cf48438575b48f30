package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/auth"
	"blog-backend/cmd/api/dto"
	"blog-backend/internal/logger"
	"blog-backend/models"
)

const ctxKeyUser = "user"

// TokenValidator resolves a bearer token to the caller's identity.
type TokenValidator interface {
	ValidateToken(token string) (*models.UserInfo, error)
}

// RequireAuth rejects requests without a valid bearer token with 401 and
// stores the caller in the gin context.
func RequireAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, tokens); !ok {
			return
		}
		c.Next()
	}
}

// AdminAuthMiddleware additionally requires the admin role and answers 403
// for authenticated non-admins.
func AdminAuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, tokens)
		if !ok {
			return
		}
		if !user.IsAdmin {
			logger.WarnWithFields("access denied", logger.Fields{
				"username": user.Username,
				"path":     c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: "forbidden_insufficient_permissions"})
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens TokenValidator) (*models.UserInfo, bool) {
	token, err := auth.ExtractBearerToken(c)
	if err != nil {
		auth.AbortWithUnauthorized(c, err)
		return nil, false
	}

	user, err := tokens.ValidateToken(token)
	if err != nil {
		logger.DebugWithFields("token rejected", logger.Fields{"error": err.Error()})
		auth.AbortWithUnauthorized(c, auth.ErrInvalidToken)
		return nil, false
	}

	c.Set(ctxKeyUser, *user)
	return user, true
}

// CurrentUser returns the identity stored by RequireAuth or AdminAuthMiddleware.
func CurrentUser(c *gin.Context) (models.UserInfo, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return models.UserInfo{}, false
	}
	user, ok := v.(models.UserInfo)
	return user, ok
}
