package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/cmd/api/services"
	"blog-backend/models"
	"blog-backend/repositories"
	"blog-backend/repositories/memory"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", fmt.Errorf("%w: title is required", services.ErrValidation), http.StatusBadRequest, "title is required"},
		{"not found", fmt.Errorf("%w: post p1", services.ErrNotFound), http.StatusNotFound, "post p1"},
		{"conflict", fmt.Errorf("%w: tag exists", services.ErrConflict), http.StatusConflict, "tag exists"},
		{"credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"unexpected", errors.New("mongo: connection refused at 10.0.0.7"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, testCase.err)

			assert.Equal(t, testCase.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), testCase.wantBody)
		})
	}
}

// brokenPosts fails every listing; other methods are never reached.
type brokenPosts struct {
	repositories.BlogRepository
}

func (brokenPosts) ListPosts(context.Context, repositories.PostQuery) ([]models.BlogPost, int64, error) {
	return nil, 0, errors.New("disk on fire")
}

func TestUnexpectedErrorsAreOpaque(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	svc := services.NewBlogService(brokenPosts{}, store.Tags(), nil, services.BlogOptions{})

	r := gin.New()
	r.GET("/api/blog", ListPostsHandler(svc))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal_server_error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

func TestDecodeFeatured(t *testing.T) {
	testCases := []struct {
		body   string
		want   bool
		wantOK bool
	}{
		{`true`, true, true},
		{` false `, false, true},
		{`{"isFeatured":true}`, true, true},
		{`{}`, false, false},
		{`"true"`, false, false},
		{``, false, false},
	}
	for _, testCase := range testCases {
		got, ok := decodeFeatured(strings.NewReader(testCase.body))
		assert.Equal(t, testCase.wantOK, ok, testCase.body)
		assert.Equal(t, testCase.want, got, testCase.body)
	}
}
