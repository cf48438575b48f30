package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/events"
	"blog-backend/internal/logger"
	"blog-backend/models"
	"blog-backend/repositories"
)

const (
	DefaultListLimit = 5
	MaxListLimit     = 50
	maxSlugAttempts  = 100
)

// BlogOptions tunes derived values. Zero values fall back to the defaults.
type BlogOptions struct {
	WordsPerMinute int
	ExcerptLength  int
}

// BlogService manages posts: validation, timestamps, slugs, excerpts and tag
// associations on top of the repositories.
type BlogService struct {
	posts  repositories.BlogRepository
	tags   repositories.TagRepository
	events EventPublisher
	opts   BlogOptions
	now    func() time.Time
}

func NewBlogService(posts repositories.BlogRepository, tags repositories.TagRepository, publisher EventPublisher, opts BlogOptions) *BlogService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if opts.WordsPerMinute <= 0 {
		opts.WordsPerMinute = DefaultWordsPerMinute
	}
	if opts.ExcerptLength <= 0 {
		opts.ExcerptLength = DefaultExcerptLength
	}
	return &BlogService{
		posts:  posts,
		tags:   tags,
		events: publisher,
		opts:   opts,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetPost returns nil, nil when the post does not exist. With
// incrementViewCount the view count is bumped atomically in storage and the
// returned post carries the new value.
func (s *BlogService) GetPost(ctx context.Context, id string, incrementViewCount bool) (*models.BlogPost, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	post, err := orNil(s.posts.GetPost(ctx, id))
	if err != nil || post == nil {
		return nil, err
	}
	if incrementViewCount {
		return s.withView(ctx, post)
	}
	return post, nil
}

// GetPostBySlug behaves like GetPost but looks the post up by slug.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string, incrementViewCount bool) (*models.BlogPost, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, nil
	}
	post, err := orNil(s.posts.GetPostBySlug(ctx, slug))
	if err != nil || post == nil {
		return nil, err
	}
	if incrementViewCount {
		return s.withView(ctx, post)
	}
	return post, nil
}

func (s *BlogService) withView(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	n, err := s.posts.IncrementViewCount(ctx, post.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	post.ViewCount = n
	return post, nil
}

// GetPosts returns one page of posts. Sorting defaults to createdAt descending.
func (s *BlogService) GetPosts(ctx context.Context, q repositories.PostQuery) (models.PaginatedResult[models.BlogPost], error) {
	q = q.Normalize()
	items, total, err := s.posts.ListPosts(ctx, q)
	if err != nil {
		return models.PaginatedResult[models.BlogPost]{}, err
	}
	return models.NewPaginatedResult(items, total, q.Page, q.PageSize), nil
}

func (s *BlogService) GetFeaturedPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	return s.posts.FeaturedPosts(ctx, clampLimit(limit, DefaultListLimit, MaxListLimit))
}

func (s *BlogService) GetRecentPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	return s.posts.RecentPosts(ctx, clampLimit(limit, DefaultListLimit, MaxListLimit))
}

// CreatePost validates and stores a new post. A blank slug is generated from
// the title; an explicit slug that is already taken is a conflict. A blank
// excerpt is derived from the content. in.TagIDs become the post's tags.
func (s *BlogService) CreatePost(ctx context.Context, in models.BlogPost) (*models.BlogPost, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	slug, err := s.resolveSlug(ctx, in.Slug, title, "")
	if err != nil {
		return nil, err
	}

	now := s.now()
	post := models.BlogPost{
		ID:         uuid.NewString(),
		Title:      title,
		Slug:       slug,
		Content:    in.Content,
		Excerpt:    s.excerptFor(in.Excerpt, in.Content),
		Author:     strings.TrimSpace(in.Author),
		TagIDs:     []string{},
		IsFeatured: in.IsFeatured,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.posts.CreatePost(ctx, &post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug %q already exists", ErrConflict, slug)
		}
		return nil, err
	}

	tagIDs := dedupeIDs(in.TagIDs)
	if len(tagIDs) > 0 {
		if err := s.tags.SetPostTags(ctx, post.ID, tagIDs); err != nil {
			s.discardPost(ctx, post.ID, err)
			return nil, err
		}
	}

	created, err := s.posts.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	s.publishPost(ctx, events.PostCreated, created)
	return created, nil
}

// discardPost removes a post whose creation could not be completed.
func (s *BlogService) discardPost(ctx context.Context, id string, cause error) {
	if _, err := s.posts.DeletePost(context.WithoutCancel(ctx), id); err != nil {
		logger.ErrorWithFields("failed to discard incomplete post", logger.Fields{
			"post_id": id,
			"cause":   cause.Error(),
			"error":   err.Error(),
		})
	}
}

// UpdatePost replaces the editable fields of an existing post. A nil in.TagIDs
// leaves the tags alone; a non-nil one replaces them. ViewCount and CreatedAt
// are never changed here.
func (s *BlogService) UpdatePost(ctx context.Context, in models.BlogPost) (*models.BlogPost, error) {
	id := strings.TrimSpace(in.ID)
	title := strings.TrimSpace(in.Title)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	current, err := s.posts.GetPost(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: post %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	slug := current.Slug
	if strings.TrimSpace(in.Slug) != "" {
		if slug, err = s.resolveSlug(ctx, in.Slug, title, id); err != nil {
			return nil, err
		}
	}

	updated := *current
	updated.Title = title
	updated.Slug = slug
	updated.Content = in.Content
	updated.Excerpt = s.excerptFor(in.Excerpt, in.Content)
	updated.Author = strings.TrimSpace(in.Author)
	updated.IsFeatured = in.IsFeatured
	updated.UpdatedAt = laterThan(s.now(), current.UpdatedAt)
	if err := s.posts.UpdatePost(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, id)
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, fmt.Errorf("%w: slug %q already exists", ErrConflict, slug)
		}
		return nil, err
	}

	if in.TagIDs != nil {
		if err := s.tags.SetPostTags(ctx, id, dedupeIDs(in.TagIDs)); err != nil {
			return nil, err
		}
	}

	result, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishPost(ctx, events.PostUpdated, result)
	return result, nil
}

// DeletePost reports whether a post was removed. Its tag associations go with it.
func (s *BlogService) DeletePost(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	deleted, err := s.posts.DeletePost(ctx, id)
	if err != nil || !deleted {
		return false, err
	}
	s.events.Publish(ctx, events.NewPostEvent(events.PostDeleted, id))
	return true, nil
}

// SetFeatured patches only the featured flag and updatedAt. It returns false
// when the post does not exist.
func (s *BlogService) SetFeatured(ctx context.Context, id string, featured bool) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	ok, err := s.posts.SetFeatured(ctx, id, featured, s.now())
	if err != nil || !ok {
		return false, err
	}
	evt := events.NewPostEvent(events.PostFeatured, id)
	evt.IsFeatured = featured
	s.events.Publish(ctx, evt)
	return true, nil
}

// GenerateSlug returns a slug for title not used by any post other than excludeID.
func (s *BlogService) GenerateSlug(ctx context.Context, title, excludeID string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: title is required", ErrValidation)
	}
	return s.uniqueSlug(ctx, Slugify(title), excludeID)
}

// CalculateReadingTime returns the estimated reading time in minutes.
func (s *BlogService) CalculateReadingTime(content string) int {
	return ReadingTime(content, s.opts.WordsPerMinute)
}

// resolveSlug normalizes an explicit slug and rejects it when taken, or
// derives a free one from title when none was given.
func (s *BlogService) resolveSlug(ctx context.Context, explicit, title, excludeID string) (string, error) {
	if strings.TrimSpace(explicit) == "" {
		return s.uniqueSlug(ctx, Slugify(title), excludeID)
	}
	slug := Slugify(explicit)
	taken, err := s.posts.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("%w: slug %q already exists", ErrConflict, slug)
	}
	return slug, nil
}

// uniqueSlug tries base, base-2, base-3, ... and falls back to a random suffix.
func (s *BlogService) uniqueSlug(ctx context.Context, base, excludeID string) (string, error) {
	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = base + "-" + strconv.Itoa(i)
		}
		taken, err := s.posts.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func (s *BlogService) excerptFor(excerpt, content string) string {
	if e := strings.TrimSpace(excerpt); e != "" {
		return e
	}
	return Excerpt(content, s.opts.ExcerptLength)
}

func (s *BlogService) publishPost(ctx context.Context, t events.EventType, p *models.BlogPost) {
	evt := events.NewPostEvent(t, p.ID)
	evt.Slug = p.Slug
	evt.Title = p.Title
	evt.IsFeatured = p.IsFeatured
	evt.TagIDs = p.TagIDs
	s.events.Publish(ctx, evt)
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
