package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/services"
)

// ListTagsHandler godoc
// @Summary      List tags
// @Description  All tags ordered by name, each with its post count
// @Tags         tags
// @Produce      json
// @Success      200  {array}  models.Tag
// @Router       /tag [get]
// @Router       /admin/tags [get]
func ListTagsHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := svc.GetAllTags(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}

// ListTagsPaginatedHandler godoc
// @Summary      List tags (paginated)
// @Tags         tags
// @Param        page        query  int     false  "Page number (1-based)"
// @Param        pageSize    query  int     false  "Page size (<=100)"
// @Param        searchTerm  query  string  false  "Name contains"
// @Produce      json
// @Success      200  {object}  dto.PaginatedTags
// @Router       /tag/paginated [get]
// @Router       /admin/tags/paginated [get]
func ListTagsPaginatedHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize, err := pageParams(c)
		if err != nil {
			writeError(c, err)
			return
		}
		result, err := svc.GetTagsPaginated(c.Request.Context(), page, pageSize, c.Query("searchTerm"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetTagHandler godoc
// @Summary      Get tag by id
// @Tags         tags
// @Param        id  path  string  true  "Tag id"
// @Produce      json
// @Success      200  {object}  models.Tag
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /tag/{id} [get]
// @Router       /admin/tags/{id} [get]
func GetTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag, err := svc.GetTag(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if tag == nil {
			notFound(c, "tag not found")
			return
		}
		c.JSON(http.StatusOK, tag)
	}
}

// GetTagByNameHandler godoc
// @Summary      Get tag by name
// @Description  Name lookup ignores case
// @Tags         tags
// @Param        name  path  string  true  "Tag name"
// @Produce      json
// @Success      200  {object}  models.Tag
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /tag/name/{name} [get]
func GetTagByNameHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag, err := svc.GetTagByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			writeError(c, err)
			return
		}
		if tag == nil {
			notFound(c, "tag not found")
			return
		}
		c.JSON(http.StatusOK, tag)
	}
}

// PopularTagsHandler godoc
// @Summary      Popular tags
// @Description  Tags with the most posts first
// @Tags         tags
// @Param        limit  query  int  false  "Max items (default 10, <=100)"
// @Produce      json
// @Success      200  {array}  models.Tag
// @Router       /tag/popular [get]
func PopularTagsHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := queryInt(c, "limit", 0, 1)
		if err != nil {
			writeError(c, err)
			return
		}
		tags, err := svc.GetPopularTags(c.Request.Context(), limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}

// TagsForPostHandler godoc
// @Summary      Tags of a post
// @Description  Empty list when the post has no tags or does not exist
// @Tags         tags
// @Param        postId  path  string  true  "Post id"
// @Produce      json
// @Success      200  {array}  models.Tag
// @Router       /tag/post/{postId} [get]
func TagsForPostHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := svc.GetTagsForPost(c.Request.Context(), c.Param("postId"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}
