package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/cmd/api/trace"
	"blog-backend/internal/logger"
)

func TestRecoveryReturnsOpaque500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	prev := logger.Log
	logger.Log = logger.NewWriterLogger("info", &logs)
	t.Cleanup(func() { logger.Log = prev })

	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("secret detail") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal_server_error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret detail")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry), logs.String())
	assert.Equal(t, "panic recovered", entry["message"])
	assert.Equal(t, "secret detail", entry["panic"])
}

func TestRequestTraceKeepsIncomingRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestTrace())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = trace.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(headerRequestID))
	assert.NotEmpty(t, rec.Header().Get(headerSpanID))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rec.Header().Get(headerRequestID))
	assert.NotEqual(t, "req-123", rec.Header().Get(headerRequestID))
}

type countingReader struct {
	r    io.Reader
	read int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += n
	return n, err
}

func TestRequestTraceReadsOnlyBodySnippet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payload := strings.Repeat("x", 10*maxBodyLog)
	body := &countingReader{r: strings.NewReader(payload)}

	var consumedBeforeHandler int
	var seen string
	r := gin.New()
	r.Use(RequestTrace())
	r.POST("/api/admin/blog", func(c *gin.Context) {
		consumedBeforeHandler = body.read
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seen = string(b)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/blog", body)
	req.ContentLength = int64(len(payload))
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.LessOrEqual(t, consumedBeforeHandler, maxBodyLog)
	assert.Equal(t, payload, seen)
}

func TestIPRateLimiterRefillsAndForgetsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(60, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "buckets are per client")

	now = now.Add(limiterIdleTTL + time.Second)
	l.Cleanup()
	l.mu.Lock()
	remaining := len(l.limiters)
	l.mu.Unlock()
	assert.Zero(t, remaining)
}
