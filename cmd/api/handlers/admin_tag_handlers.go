package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/dto"
	"blog-backend/cmd/api/services"
)

// AdminCreateTagHandler godoc
// @Summary      Create tag
// @Description  Names are trimmed and unique ignoring case
// @Tags         admin-tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.TagRequest  true  "Tag"
// @Success      201  {object}  models.Tag
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /admin/tags [post]
func AdminCreateTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TagRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		req.Name = strings.TrimSpace(req.Name)

		tag, err := svc.CreateTag(c.Request.Context(), req.ToModel())
		if err != nil {
			writeError(c, err)
			return
		}
		c.Header("Location", "/api/admin/tags/"+tag.ID)
		c.JSON(http.StatusCreated, tag)
	}
}

// AdminUpdateTagHandler godoc
// @Summary      Update tag
// @Description  The body id, when present, must equal the path id
// @Tags         admin-tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string          true  "Tag id"
// @Param        request  body  dto.TagRequest  true  "Tag"
// @Success      200  {object}  models.Tag
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /admin/tags/{id} [put]
func AdminUpdateTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req dto.TagRequest
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
		req.Name = strings.TrimSpace(req.Name)

		tag, err := svc.UpdateTag(c.Request.Context(), req.ToModel())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tag)
	}
}

// AdminDeleteTagHandler godoc
// @Summary      Delete tag
// @Description  Also detaches the tag from every post
// @Tags         admin-tags
// @Security     BearerAuth
// @Param        id  path  string  true  "Tag id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /admin/tags/{id} [delete]
func AdminDeleteTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := svc.DeleteTag(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if !deleted {
			notFound(c, "tag not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// AddTagsToPostHandler godoc
// @Summary      Attach tags to a post
// @Description  Set union: attached and unknown tag ids are ignored
// @Tags         admin-tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        postId   path  string             true  "Post id"
// @Param        request  body  dto.TagIDsRequest  true  "Tag ids"
// @Success      200  {object}  dto.AssociationResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /admin/tags/post/{postId} [post]
func AddTagsToPostHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TagIDsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		changed, err := svc.AddTagsToPost(c.Request.Context(), c.Param("postId"), req.TagIDs)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AssociationResponse{Changed: changed})
	}
}

// RemoveTagsFromPostHandler godoc
// @Summary      Detach tags from a post
// @Tags         admin-tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        postId   path  string             true  "Post id"
// @Param        request  body  dto.TagIDsRequest  true  "Tag ids"
// @Success      200  {object}  dto.AssociationResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /admin/tags/post/{postId} [delete]
func RemoveTagsFromPostHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TagIDsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		changed, err := svc.RemoveTagsFromPost(c.Request.Context(), c.Param("postId"), req.TagIDs)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AssociationResponse{Changed: changed})
	}
}
