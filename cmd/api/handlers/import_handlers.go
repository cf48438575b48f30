package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/cmd/api/dto"
	"blog-backend/cmd/api/services"
)

// ImportFeedHandler godoc
// @Summary      Import posts from a feed
// @Description  Creates one post per RSS/Atom item. Items whose slug already exists are skipped. Item categories become tags.
// @Tags         admin-blog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ImportFeedRequest  true  "Feed"
// @Success      200  {object}  services.ImportResult
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /admin/blog/import [post]
func ImportFeedHandler(svc *services.ImportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ImportFeedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		result, err := svc.Import(c.Request.Context(), services.ImportRequest{
			URL:    req.URL,
			Limit:  req.Limit,
			Author: req.Author,
			TagIDs: req.TagIDs,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
