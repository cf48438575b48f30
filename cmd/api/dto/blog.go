package dto

import "blog-backend/models"

// CreatePostRequest is the body of POST /api/admin/blog.
type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required" example:"Hello, World"`
	Slug       string   `json:"slug" example:"hello-world"`
	Content    string   `json:"content" example:"# Hello"`
	Excerpt    string   `json:"excerpt"`
	Author     string   `json:"author" example:"alice"`
	TagIDs     []string `json:"tagIds"`
	IsFeatured bool     `json:"isFeatured"`
}

// ToModel maps the request onto a post.
func (r CreatePostRequest) ToModel() models.BlogPost {
	return models.BlogPost{
		Title:      r.Title,
		Slug:       r.Slug,
		Content:    r.Content,
		Excerpt:    r.Excerpt,
		Author:     r.Author,
		TagIDs:     r.TagIDs,
		IsFeatured: r.IsFeatured,
	}
}

// UpdatePostRequest is the body of PUT /api/admin/blog/{id}. A non-empty ID
// must equal the path id. Omitting tagIds keeps the current tags; an empty
// list clears them.
type UpdatePostRequest struct {
	ID         string    `json:"id"`
	Title      string    `json:"title" binding:"required"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	Author     string    `json:"author"`
	TagIDs     *[]string `json:"tagIds"`
	IsFeatured bool      `json:"isFeatured"`
}

func (r UpdatePostRequest) ToModel() models.BlogPost {
	p := models.BlogPost{
		ID:         r.ID,
		Title:      r.Title,
		Slug:       r.Slug,
		Content:    r.Content,
		Excerpt:    r.Excerpt,
		Author:     r.Author,
		IsFeatured: r.IsFeatured,
	}
	if r.TagIDs != nil {
		p.TagIDs = append([]string{}, (*r.TagIDs)...)
	}
	return p
}

type SlugResponse struct {
	Slug string `json:"slug" example:"hello-world"`
}

type ReadingTimeResponse struct {
	Minutes int `json:"minutes" example:"3"`
}

// PaginatedBlogSummaries documents models.PaginatedResult[models.BlogSummary].
type PaginatedBlogSummaries struct {
	Items           []models.BlogSummary `json:"items"`
	TotalCount      int64                `json:"totalCount"`
	Page            int                  `json:"page"`
	PageSize        int                  `json:"pageSize"`
	TotalPages      int                  `json:"totalPages"`
	HasPreviousPage bool                 `json:"hasPreviousPage"`
	HasNextPage     bool                 `json:"hasNextPage"`
}

// ImportFeedRequest is the body of POST /api/admin/blog/import.
type ImportFeedRequest struct {
	URL    string   `json:"url" binding:"required" example:"https://go.dev/blog/feed.atom"`
	Limit  int      `json:"limit" example:"20"`
	Author string   `json:"author"`
	TagIDs []string `json:"tagIds"`
}
