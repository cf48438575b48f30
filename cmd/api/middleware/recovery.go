package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/dto"
	"blog-backend/cmd/api/trace"
	"blog-backend/internal/logger"
)

// Recovery turns a panic into an opaque 500 and logs the cause with the stack
// through the structured logger instead of gin's plain-text writer.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		logger.ErrorWithFields("panic recovered", logger.Fields{
			"panic":      fmt.Sprint(rec),
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"span_id":    trace.SpanIDFromContext(c.Request.Context()),
			"stack":      string(debug.Stack()),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: dto.ErrInternal})
	})
}
