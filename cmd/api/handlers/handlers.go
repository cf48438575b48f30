package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	_ "blog-backend/cmd/api/dto"
	"blog-backend/cmd/api/services"
	"blog-backend/models"
	"blog-backend/repositories"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List post summaries with filters, sorting and pagination
// @Tags         blog
// @Param        page        query  int     false  "Page number (1-based)"
// @Param        pageSize    query  int     false  "Page size (<=100)"
// @Param        tag         query  string  false  "Tag id or name"
// @Param        author      query  string  false  "Author"
// @Param        searchTerm  query  string  false  "Search in title, excerpt and content"
// @Param        isFeatured  query  bool    false  "Featured filter"
// @Param        sortBy      query  string  false  "createdAt | updatedAt | title | viewCount"
// @Param        sortOrder   query  string  false  "asc | desc"
// @Produce      json
// @Success      200  {object}  dto.PaginatedBlogSummaries
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog [get]
func ListPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize, err := pageParams(c)
		if err != nil {
			writeError(c, err)
			return
		}
		featured, err := queryBool(c, "isFeatured")
		if err != nil {
			writeError(c, err)
			return
		}
		q := repositories.PostQuery{
			Page:       page,
			PageSize:   pageSize,
			Tag:        c.Query("tag"),
			Author:     c.Query("author"),
			SearchTerm: c.Query("searchTerm"),
			IsFeatured: featured,
			SortBy:     c.Query("sortBy"),
			SortOrder:  c.Query("sortOrder"),
		}

		result, err := svc.GetPosts(c.Request.Context(), q)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.MapPaginatedResult(result, models.NewBlogSummary))
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Description  Get a full post. Every successful read counts as a view.
// @Tags         blog
// @Param        id   path   string  true  "Post id"
// @Produce      json
// @Success      200  {object}  models.BlogPost
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/{id} [get]
func GetPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetPost(c.Request.Context(), c.Param("id"), true)
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

// GetPostBySlugHandler godoc
// @Summary      Get post by slug
// @Tags         blog
// @Param        slug  path   string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  models.BlogPost
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/slug/{slug} [get]
func GetPostBySlugHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetPostBySlug(c.Request.Context(), c.Param("slug"), true)
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

// FeaturedPostsHandler godoc
// @Summary      Featured posts
// @Description  Newest featured posts first
// @Tags         blog
// @Param        limit  query  int  false  "Max items (default 5, <=50)"
// @Produce      json
// @Success      200  {array}  models.BlogSummary
// @Router       /blog/featured [get]
func FeaturedPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := queryInt(c, "limit", 0, 1)
		if err != nil {
			writeError(c, err)
			return
		}
		posts, err := svc.GetFeaturedPosts(c.Request.Context(), limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.NewBlogSummaries(posts))
	}
}

// RecentPostsHandler godoc
// @Summary      Recent posts
// @Tags         blog
// @Param        limit  query  int  false  "Max items (default 5, <=50)"
// @Produce      json
// @Success      200  {array}  models.BlogSummary
// @Router       /blog/recent [get]
func RecentPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := queryInt(c, "limit", 0, 1)
		if err != nil {
			writeError(c, err)
			return
		}
		posts, err := svc.GetRecentPosts(c.Request.Context(), limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.NewBlogSummaries(posts))
	}
}
