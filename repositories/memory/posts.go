package memory

import (
	"cmp"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"blog-backend/models"
	"blog-backend/repositories"
)

type PostRepository struct {
	s *Store
}

var _ repositories.BlogRepository = (*PostRepository)(nil)

func (r *PostRepository) ListPosts(ctx context.Context, q repositories.PostQuery) ([]models.BlogPost, int64, error) {
	q = q.Normalize()

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []models.BlogPost
	for _, p := range r.s.posts {
		if !r.matchesLocked(p, q) {
			continue
		}
		matched = append(matched, r.s.postLocked(p))
	}
	sortPosts(matched, q.SortBy, q.SortOrder)

	return paginate(matched, q.Page, q.PageSize), int64(len(matched)), nil
}

func (r *PostRepository) matchesLocked(p *models.BlogPost, q repositories.PostQuery) bool {
	if q.Author != "" && !strings.EqualFold(p.Author, q.Author) {
		return false
	}
	if q.IsFeatured != nil && p.IsFeatured != *q.IsFeatured {
		return false
	}
	if q.SearchTerm != "" &&
		!containsFold(p.Title, q.SearchTerm) &&
		!containsFold(p.Excerpt, q.SearchTerm) &&
		!containsFold(p.Content, q.SearchTerm) {
		return false
	}
	if q.Tag != "" {
		found := false
		for _, id := range p.TagIDs {
			t, ok := r.s.tags[id]
			if !ok {
				continue
			}
			if t.ID == q.Tag || strings.EqualFold(t.Name, q.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *PostRepository) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, repositories.ErrNotFound)
	}
	out := r.s.postLocked(p)
	return &out, nil
}

func (r *PostRepository) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.posts {
		if p.Slug == slug {
			out := r.s.postLocked(p)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("post slug %s: %w", slug, repositories.ErrNotFound)
}

func (r *PostRepository) CreatePost(ctx context.Context, p *models.BlogPost) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("post id is required")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.posts[p.ID]; exists {
		return fmt.Errorf("post %s: %w", p.ID, repositories.ErrDuplicate)
	}
	if r.slugTakenLocked(p.Slug, "") {
		return fmt.Errorf("post slug %s: %w", p.Slug, repositories.ErrDuplicate)
	}
	stored := *p
	stored.TagIDs = r.s.knownTagIDsLocked(p.TagIDs)
	stored.Tags = nil
	r.s.posts[p.ID] = &stored

	*p = r.s.postLocked(&stored)
	return nil
}

func (r *PostRepository) UpdatePost(ctx context.Context, p *models.BlogPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.posts[p.ID]
	if !ok {
		return fmt.Errorf("post %s: %w", p.ID, repositories.ErrNotFound)
	}
	if r.slugTakenLocked(p.Slug, p.ID) {
		return fmt.Errorf("post slug %s: %w", p.Slug, repositories.ErrDuplicate)
	}
	stored.Title = p.Title
	stored.Slug = p.Slug
	stored.Content = p.Content
	stored.Excerpt = p.Excerpt
	stored.Author = p.Author
	stored.IsFeatured = p.IsFeatured
	stored.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return false, nil
	}
	delete(r.s.posts, id)
	return true, nil
}

func (r *PostRepository) FeaturedPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	featured := true
	posts, _, err := r.ListPosts(ctx, repositories.PostQuery{
		Page:       1,
		PageSize:   limit,
		IsFeatured: &featured,
	})
	return posts, err
}

func (r *PostRepository) RecentPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	posts, _, err := r.ListPosts(ctx, repositories.PostQuery{Page: 1, PageSize: limit})
	return posts, err
}

func (r *PostRepository) IncrementViewCount(ctx context.Context, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[id]
	if !ok {
		return 0, fmt.Errorf("post %s: %w", id, repositories.ErrNotFound)
	}
	p.ViewCount++
	return p.ViewCount, nil
}

func (r *PostRepository) SetFeatured(ctx context.Context, id string, featured bool, updatedAt time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[id]
	if !ok {
		return false, nil
	}
	p.IsFeatured = featured
	p.UpdatedAt = updatedAt
	return true, nil
}

func (r *PostRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.slugTakenLocked(slug, excludeID), nil
}

func (r *PostRepository) slugTakenLocked(slug, excludeID string) bool {
	if slug == "" {
		return false
	}
	for id, p := range r.s.posts {
		if id != excludeID && p.Slug == slug {
			return true
		}
	}
	return false
}

func sortPosts(posts []models.BlogPost, sortBy, order string) {
	dir := -1
	if order == repositories.SortAsc {
		dir = 1
	}
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		var c int
		switch sortBy {
		case repositories.SortByUpdatedAt:
			c = a.UpdatedAt.Compare(b.UpdatedAt)
		case repositories.SortByTitle:
			c = strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		case repositories.SortByViewCount:
			c = cmp.Compare(a.ViewCount, b.ViewCount)
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		return c*dir < 0
	})
}
