package dto

import "blog-backend/models"

// TagRequest is the body of tag create and update calls. ID is required on
// update and must equal the path id.
type TagRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required" example:"Go"`
	Color string `json:"color" example:"#00ADD8"`
}

func (r TagRequest) ToModel() models.Tag {
	return models.Tag{ID: r.ID, Name: r.Name, Color: r.Color}
}

// TagIDsRequest lists tags to attach to or detach from a post.
type TagIDsRequest struct {
	TagIDs []string `json:"tagIds" binding:"required"`
}

// AssociationResponse reports whether a post's tags changed.
type AssociationResponse struct {
	Changed bool `json:"changed"`
}

// PaginatedTags documents models.PaginatedResult[models.Tag].
type PaginatedTags struct {
	Items           []models.Tag `json:"items"`
	TotalCount      int64        `json:"totalCount"`
	Page            int          `json:"page"`
	PageSize        int          `json:"pageSize"`
	TotalPages      int          `json:"totalPages"`
	HasPreviousPage bool         `json:"hasPreviousPage"`
	HasNextPage     bool         `json:"hasNextPage"`
}
