package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/middleware"
	"blog-backend/cmd/api/services"
	"blog-backend/internal/logger"
	"blog-backend/models"
)

// LoginHandler godoc
// @Summary      Log in
// @Description  Exchanges username and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  models.LoginRequest  true  "Credentials"
// @Success      200  {object}  models.LoginResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      429  {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		resp, err := authSvc.Login(c.Request.Context(), req)
		if err != nil {
			logger.WarnWithFields("login failed", logger.Fields{
				"username":  req.Username,
				"client_ip": c.ClientIP(),
				"error":     err.Error(),
			})
			writeError(c, err)
			return
		}

		logger.InfoWithFields("login succeeded", logger.Fields{
			"username": resp.UserInfo.Username,
			"is_admin": resp.UserInfo.IsAdmin,
		})
		c.JSON(http.StatusOK, resp)
	}
}

// AdminCheckHandler godoc
// @Summary      Is the caller an admin
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {boolean}  boolean
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /auth/admin-check [get]
func AdminCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, ok && user.IsAdmin)
	}
}
