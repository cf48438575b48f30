package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/dto"
	"blog-backend/cmd/api/services"
)

// maxReadingTimeBody bounds the content accepted by the reading-time endpoint.
const maxReadingTimeBody = 4 << 20

// AdminGetPostHandler godoc
// @Summary      Get post (admin)
// @Description  Get a full post. The view count is only bumped when incrementViewCount=true.
// @Tags         admin-blog
// @Security     BearerAuth
// @Param        id                  path   string  true   "Post id"
// @Param        incrementViewCount  query  bool    false  "Count this read as a view"
// @Produce      json
// @Success      200  {object}  models.BlogPost
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /admin/blog/{id} [get]
func AdminGetPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		inc, _ := strconv.ParseBool(c.DefaultQuery("incrementViewCount", "false"))
		post, err := svc.GetPost(c.Request.Context(), c.Param("id"), inc)
		if err != nil {
			writeError(c, err)
			return
		}
		if post == nil {
			notFound(c, "post not found")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// AdminCreatePostHandler godoc
// @Summary      Create post
// @Description  Slug is derived from the title when omitted. Excerpt is derived from the content when omitted.
// @Tags         admin-blog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreatePostRequest  true  "Post"
// @Success      201  {object}  models.BlogPost
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /admin/blog [post]
func AdminCreatePostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		post, err := svc.CreatePost(c.Request.Context(), req.ToModel())
		if err != nil {
			writeError(c, err)
			return
		}
		c.Header("Location", "/api/admin/blog/"+post.ID)
		c.JSON(http.StatusCreated, post)
	}
}

// AdminUpdatePostHandler godoc
// @Summary      Update post
// @Description  The body id, when present, must equal the path id. Omitting tagIds keeps the current tags.
// @Tags         admin-blog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "Post id"
// @Param        request  body  dto.UpdatePostRequest  true  "Post"
// @Success      200  {object}  models.BlogPost
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /admin/blog/{id} [put]
func AdminUpdatePostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req dto.UpdatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if req.ID == "" {
			req.ID = id
		}
		if req.ID != id {
			badRequest(c, "id in path does not match id in body")
			return
		}

		post, err := svc.UpdatePost(c.Request.Context(), req.ToModel())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// AdminDeletePostHandler godoc
// @Summary      Delete post
// @Tags         admin-blog
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /admin/blog/{id} [delete]
func AdminDeletePostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := svc.DeletePost(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if !deleted {
			notFound(c, "post not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// AdminSetFeaturedHandler godoc
// @Summary      Set featured flag
// @Description  Body is a bare JSON boolean. {"isFeatured": bool} is accepted as well.
// @Tags         admin-blog
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string  true  "Post id"
// @Param        request  body  bool    true  "Featured"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /admin/blog/{id}/feature [post]
func AdminSetFeaturedHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		featured, ok := decodeFeatured(c.Request.Body)
		if !ok {
			badRequest(c, "body must be a JSON boolean")
			return
		}

		updated, err := svc.SetFeatured(c.Request.Context(), c.Param("id"), featured)
		if err != nil {
			writeError(c, err)
			return
		}
		if !updated {
			notFound(c, "post not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func decodeFeatured(body io.Reader) (bool, bool) {
	raw, err := io.ReadAll(io.LimitReader(body, 1024))
	if err != nil {
		return false, false
	}
	var featured bool
	if err := json.Unmarshal(raw, &featured); err == nil {
		return featured, true
	}
	var wrapped struct {
		IsFeatured *bool `json:"isFeatured"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.IsFeatured != nil {
		return *wrapped.IsFeatured, true
	}
	return false, false
}

// GenerateSlugHandler godoc
// @Summary      Generate slug
// @Description  Returns a slug for title that no post other than excludeId uses
// @Tags         admin-blog
// @Security     BearerAuth
// @Param        title      query  string  true   "Post title"
// @Param        excludeId  query  string  false  "Post id to ignore"
// @Produce      json
// @Success      200  {object}  dto.SlugResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /admin/blog/generate-slug [get]
func GenerateSlugHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, err := svc.GenerateSlug(c.Request.Context(), c.Query("title"), c.Query("excludeId"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SlugResponse{Slug: slug})
	}
}

// ReadingTimeHandler godoc
// @Summary      Estimate reading time
// @Description  Body is the Markdown content, either as a JSON string or as raw text
// @Tags         admin-blog
// @Security     BearerAuth
// @Accept       json,plain
// @Produce      json
// @Param        request  body  string  true  "Content"
// @Success      200  {object}  dto.ReadingTimeResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /admin/blog/reading-time [post]
func ReadingTimeHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxReadingTimeBody))
		if err != nil {
			badRequest(c, "unreadable body")
			return
		}
		content := string(raw)
		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '"' {
			if err := json.Unmarshal(trimmed, &content); err != nil {
				badRequest(c, "invalid JSON string")
				return
			}
		}
		c.JSON(http.StatusOK, dto.ReadingTimeResponse{Minutes: svc.CalculateReadingTime(strings.TrimSpace(content))})
	}
}
