package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/trace"
	"blog-backend/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
	maxBodyLog      = 1024
)

// Paths whose request bodies carry credentials and are never logged.
var sensitiveBodyPaths = []string{"/api/auth/login"}

// RequestTrace makes sure every request has a request id and a span id,
// echoes both as response headers and logs the completed request.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		info := trace.Info{
			RequestID:    requestID,
			SpanID:       trace.GenerateSpanID(),
			ParentSpanID: req.Header.Get(headerSpanID),
		}
		c.Request = req.WithContext(trace.WithInfo(req.Context(), info))
		req = c.Request

		c.Writer.Header().Set(headerRequestID, info.RequestID)
		c.Writer.Header().Set(headerSpanID, info.SpanID)

		queryParams := map[string][]string{}
		for key, values := range req.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}
		bodySnippet := readBodySnippet(c)

		c.Next()

		fields := logger.Fields{
			"method":       req.Method,
			"path":         req.URL.Path,
			"query_params": queryParams,
			"status":       c.Writer.Status(),
			"duration":     time.Since(start).String(),
			"client_ip":    c.ClientIP(),
			"request_id":   info.RequestID,
			"span_id":      info.SpanID,
		}
		if info.ParentSpanID != "" {
			fields["parent_span_id"] = info.ParentSpanID
		}
		if bodySnippet != "" {
			fields["body"] = bodySnippet
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}

// readBodySnippet returns up to maxBodyLog bytes of a write request's body
// and restores the body for the handler.
func readBodySnippet(c *gin.Context) string {
	req := c.Request
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return ""
	}
	for _, p := range sensitiveBodyPaths {
		if strings.HasPrefix(req.URL.Path, p) {
			return ""
		}
	}

	snippet, err := io.ReadAll(io.LimitReader(req.Body, maxBodyLog))
	if err != nil {
		return ""
	}
	// Put the consumed prefix back in front of the unread remainder.
	c.Request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(snippet), req.Body), req.Body}
	return string(snippet)
}
