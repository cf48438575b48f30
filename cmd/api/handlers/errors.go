package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/dto"
	"blog-backend/cmd/api/services"
	"blog-backend/cmd/api/trace"
	"blog-backend/internal/logger"
	"blog-backend/repositories"
)

// writeError maps service outcomes onto status codes. Anything unexpected is
// logged and answered with an opaque 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrUpstream):
		c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_credentials"})
	default:
		_ = c.Error(err)
		logger.ErrorWithFields("request failed", logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"span_id":    trace.SpanIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: dto.ErrInternal})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: msg})
}

// queryInt returns def when the parameter is absent. A value that is not an
// integer or is below lo is a validation error.
func queryInt(c *gin.Context, key string, def, lo int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo {
		return 0, fmt.Errorf("%w: %s must be an integer >= %d", services.ErrValidation, key, lo)
	}
	return v, nil
}

// queryBool returns nil when the parameter is absent.
func queryBool(c *gin.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", services.ErrValidation, key)
	}
	return &b, nil
}

// pageParams reads page and pageSize. Both must be positive when present.
func pageParams(c *gin.Context) (int, int, error) {
	page, err := queryInt(c, "page", 1, 1)
	if err != nil {
		return 0, 0, err
	}
	pageSize, err := queryInt(c, "pageSize", repositories.DefaultPageSize, 1)
	if err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}
