package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/events"
	"blog-backend/models"
	"blog-backend/repositories"
)

const (
	DefaultPopularTags = 10
	MaxPopularTags     = 100
)

// EventPublisher receives domain events after successful writes.
type EventPublisher interface {
	Publish(ctx context.Context, evt events.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, events.Event) {}

// TagService validates tag writes and maintains post/tag associations.
type TagService struct {
	tags   repositories.TagRepository
	posts  repositories.BlogRepository
	events EventPublisher
	now    func() time.Time
}

func NewTagService(tags repositories.TagRepository, posts repositories.BlogRepository, publisher EventPublisher) *TagService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &TagService{
		tags:   tags,
		posts:  posts,
		events: publisher,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *TagService) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	return s.tags.ListTags(ctx)
}

// GetTag returns nil, nil when no tag has the id.
func (s *TagService) GetTag(ctx context.Context, id string) (*models.Tag, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	return orNil(s.tags.GetTag(ctx, id))
}

// GetTagByName matches ignoring case and returns nil, nil on a miss.
func (s *TagService) GetTagByName(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	return orNil(s.tags.GetTagByName(ctx, name))
}

func (s *TagService) GetTagsPaginated(ctx context.Context, page, pageSize int, searchTerm string) (models.PaginatedResult[models.Tag], error) {
	page, pageSize = repositories.NormalizePage(page, pageSize)
	items, total, err := s.tags.ListTagsPaginated(ctx, page, pageSize, searchTerm)
	if err != nil {
		return models.PaginatedResult[models.Tag]{}, err
	}
	return models.NewPaginatedResult(items, total, page, pageSize), nil
}

func (s *TagService) GetPopularTags(ctx context.Context, limit int) ([]models.Tag, error) {
	return s.tags.PopularTags(ctx, clampLimit(limit, DefaultPopularTags, MaxPopularTags))
}

func (s *TagService) GetTagsForPost(ctx context.Context, postID string) ([]models.Tag, error) {
	if strings.TrimSpace(postID) == "" {
		return []models.Tag{}, nil
	}
	return s.tags.TagsForPost(ctx, postID)
}

// CreateTag trims the name, rejects duplicates ignoring case, assigns an id
// and stamps both timestamps.
func (s *TagService) CreateTag(ctx context.Context, in models.Tag) (*models.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrValidation)
	}

	exists, err := s.tags.TagNameExists(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: tag %q already exists", ErrConflict, name)
	}

	now := s.now()
	tag := models.Tag{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     strings.TrimSpace(in.Color),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tags.CreateTag(ctx, &tag); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("%w: tag %q already exists", ErrConflict, name)
		}
		return nil, err
	}

	s.events.Publish(ctx, events.NewTagEvent(events.TagCreated, tag.ID, tag.Name))
	return &tag, nil
}

// UpdateTag renames or recolors an existing tag. CreatedAt is preserved.
func (s *TagService) UpdateTag(ctx context.Context, in models.Tag) (*models.Tag, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	if id == "" {
		return nil, fmt.Errorf("%w: tag id is required", ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrValidation)
	}

	current, err := s.tags.GetTag(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: tag %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	taken, err := s.tags.TagNameExists(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: tag %q already exists", ErrConflict, name)
	}

	updated := *current
	updated.Name = name
	updated.Color = strings.TrimSpace(in.Color)
	updated.UpdatedAt = laterThan(s.now(), current.UpdatedAt)
	if err := s.tags.UpdateTag(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, fmt.Errorf("%w: tag %s", ErrNotFound, id)
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, fmt.Errorf("%w: tag %q already exists", ErrConflict, name)
		}
		return nil, err
	}

	s.events.Publish(ctx, events.NewTagEvent(events.TagUpdated, updated.ID, updated.Name))
	return &updated, nil
}

// DeleteTag reports whether a tag was removed. A blank id removes nothing.
func (s *TagService) DeleteTag(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	deleted, err := s.tags.DeleteTag(ctx, id)
	if err != nil || !deleted {
		return false, err
	}
	s.events.Publish(ctx, events.NewTagEvent(events.TagDeleted, id, ""))
	return true, nil
}

// AddTagsToPost attaches tagIDs to the post. Tags already attached and unknown
// ids are skipped; the result reports whether anything changed.
func (s *TagService) AddTagsToPost(ctx context.Context, postID string, tagIDs []string) (bool, error) {
	if strings.TrimSpace(postID) == "" {
		return false, nil
	}
	if err := s.requirePost(ctx, postID); err != nil {
		return false, err
	}
	changed, err := s.tags.AddTagsToPost(ctx, postID, tagIDs)
	if err != nil || !changed {
		return false, err
	}
	s.events.Publish(ctx, events.NewPostTagsChangedEvent(postID, tagIDs, nil))
	return true, nil
}

// RemoveTagsFromPost detaches tagIDs from the post and reports whether
// anything changed.
func (s *TagService) RemoveTagsFromPost(ctx context.Context, postID string, tagIDs []string) (bool, error) {
	if strings.TrimSpace(postID) == "" {
		return false, nil
	}
	if err := s.requirePost(ctx, postID); err != nil {
		return false, err
	}
	changed, err := s.tags.RemoveTagsFromPost(ctx, postID, tagIDs)
	if err != nil || !changed {
		return false, err
	}
	s.events.Publish(ctx, events.NewPostTagsChangedEvent(postID, nil, tagIDs))
	return true, nil
}

func (s *TagService) requirePost(ctx context.Context, postID string) error {
	if s.posts == nil {
		return nil
	}
	_, err := s.posts.GetPost(ctx, postID)
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}
	return err
}

// orNil maps a repository miss to nil, nil.
func orNil[T any](v *T, err error) (*T, error) {
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// laterThan returns now, or the instant just after prev when the clock has
// not moved past it.
func laterThan(now, prev time.Time) time.Time {
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}
