package repositories

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"blog-backend/models"
)

var (
	// ErrNotFound is returned by repositories when the requested document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint
	// (post slug, tag name).
	ErrDuplicate = errors.New("duplicate key")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Sort keys accepted by PostQuery.SortBy.
const (
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
	SortByTitle     = "title"
	SortByViewCount = "viewCount"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PostQuery describes one page of a filtered post listing.
//
// Author matches exactly, ignoring case. Tag matches a tag id or a tag name
// (ignoring case). SearchTerm is a case-insensitive substring match over
// title, excerpt and content.
type PostQuery struct {
	Page       int
	PageSize   int
	Author     string
	Tag        string
	SearchTerm string
	IsFeatured *bool
	SortBy     string
	SortOrder  string
}

// Normalize clamps paging values and fills in the default sort (createdAt desc).
func (q PostQuery) Normalize() PostQuery {
	q.Page, q.PageSize = NormalizePage(q.Page, q.PageSize)
	q.Author = strings.TrimSpace(q.Author)
	q.Tag = strings.TrimSpace(q.Tag)
	q.SearchTerm = strings.TrimSpace(q.SearchTerm)

	switch strings.ToLower(q.SortBy) {
	case "updatedat", "updated_at":
		q.SortBy = SortByUpdatedAt
	case "title":
		q.SortBy = SortByTitle
	case "viewcount", "view_count", "views":
		q.SortBy = SortByViewCount
	default:
		q.SortBy = SortByCreatedAt
	}
	if strings.EqualFold(q.SortOrder, SortAsc) {
		q.SortOrder = SortAsc
	} else {
		q.SortOrder = SortDesc
	}
	return q
}

// NormalizePage applies the shared paging rules: page starts at 1 and the page
// size falls back to DefaultPageSize and never exceeds MaxPageSize. Page is
// capped so that Offset never overflows; such a page is simply empty.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if maxPage := math.MaxInt/pageSize - 1; page > maxPage {
		page = maxPage
	}
	return page, pageSize
}

// Offset is the number of items before page. Inputs must be normalized.
func Offset(page, pageSize int) int64 {
	return int64(page-1) * int64(pageSize)
}

// BlogRepository persists blog posts. Returned posts have Tags hydrated.
type BlogRepository interface {
	ListPosts(ctx context.Context, q PostQuery) ([]models.BlogPost, int64, error)
	GetPost(ctx context.Context, id string) (*models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, p *models.BlogPost) error
	// UpdatePost replaces the mutable fields of an existing post. View count and
	// creation time are left untouched.
	UpdatePost(ctx context.Context, p *models.BlogPost) error
	DeletePost(ctx context.Context, id string) (bool, error)
	FeaturedPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
	RecentPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
	// IncrementViewCount atomically adds one to the view count and returns the new value.
	IncrementViewCount(ctx context.Context, id string) (int64, error)
	// SetFeatured patches only is_featured and updated_at. It reports false when
	// no post has the id.
	SetFeatured(ctx context.Context, id string, featured bool, updatedAt time.Time) (bool, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

// TagRepository persists tags and their association with posts.
//
// AddTagsToPost has set-union semantics: tags already on the post and unknown
// tag ids are ignored, new ids are appended in the given order.
// RemoveTagsFromPost has set-difference semantics. Both report whether the
// association actually changed.
type TagRepository interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
	ListTagsPaginated(ctx context.Context, page, pageSize int, searchTerm string) ([]models.Tag, int64, error)
	GetTag(ctx context.Context, id string) (*models.Tag, error)
	GetTagByName(ctx context.Context, name string) (*models.Tag, error)
	TagNameExists(ctx context.Context, name, excludeID string) (bool, error)
	CreateTag(ctx context.Context, t *models.Tag) error
	UpdateTag(ctx context.Context, t *models.Tag) error
	DeleteTag(ctx context.Context, id string) (bool, error)
	TagsForPost(ctx context.Context, postID string) ([]models.Tag, error)
	PopularTags(ctx context.Context, limit int) ([]models.Tag, error)
	AddTagsToPost(ctx context.Context, postID string, tagIDs []string) (bool, error)
	RemoveTagsFromPost(ctx context.Context, postID string, tagIDs []string) (bool, error)
	// SetPostTags replaces the association of a post with exactly tagIDs.
	SetPostTags(ctx context.Context, postID string, tagIDs []string) error
}
