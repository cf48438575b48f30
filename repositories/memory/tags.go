package memory

import (
	"context"
	"fmt"
	"strings"

	"blog-backend/models"
	"blog-backend/repositories"
)

type TagRepository struct {
	s *Store
}

var _ repositories.TagRepository = (*TagRepository)(nil)

func (r *TagRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.allLocked(""), nil
}

func (r *TagRepository) allLocked(searchTerm string) []models.Tag {
	tags := make([]models.Tag, 0, len(r.s.tags))
	for id, t := range r.s.tags {
		if searchTerm != "" && !containsFold(t.Name, searchTerm) {
			continue
		}
		out, _ := r.s.tagLocked(id)
		tags = append(tags, out)
	}
	sortTagsByName(tags)
	return tags
}

func (r *TagRepository) ListTagsPaginated(ctx context.Context, page, pageSize int, searchTerm string) ([]models.Tag, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tags := r.allLocked(strings.TrimSpace(searchTerm))
	return paginate(tags, page, pageSize), int64(len(tags)), nil
}

func (r *TagRepository) GetTag(ctx context.Context, id string) (*models.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tagLocked(id)
	if !ok {
		return nil, fmt.Errorf("tag %s: %w", id, repositories.ErrNotFound)
	}
	return &t, nil
}

func (r *TagRepository) GetTagByName(ctx context.Context, name string) (*models.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for id, t := range r.s.tags {
		if strings.EqualFold(t.Name, name) {
			out, _ := r.s.tagLocked(id)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("tag name %s: %w", name, repositories.ErrNotFound)
}

func (r *TagRepository) TagNameExists(ctx context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTakenLocked(name, excludeID), nil
}

func (r *TagRepository) nameTakenLocked(name, excludeID string) bool {
	for id, t := range r.s.tags {
		if id != excludeID && strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

func (r *TagRepository) CreateTag(ctx context.Context, t *models.Tag) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("tag id is required")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.tags[t.ID]; exists {
		return fmt.Errorf("tag %s already exists", t.ID)
	}
	if r.nameTakenLocked(t.Name, "") {
		return fmt.Errorf("tag name %q: %w", t.Name, repositories.ErrDuplicate)
	}
	stored := *t
	stored.PostCount = 0
	r.s.tags[t.ID] = &stored
	return nil
}

func (r *TagRepository) UpdateTag(ctx context.Context, t *models.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.tags[t.ID]
	if !ok {
		return fmt.Errorf("tag %s: %w", t.ID, repositories.ErrNotFound)
	}
	if r.nameTakenLocked(t.Name, t.ID) {
		return fmt.Errorf("tag name %q: %w", t.Name, repositories.ErrDuplicate)
	}
	stored.Name = t.Name
	stored.Color = t.Color
	stored.UpdatedAt = t.UpdatedAt
	return nil
}

// DeleteTag removes the tag and detaches it from every post.
func (r *TagRepository) DeleteTag(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tags[id]; !ok {
		return false, nil
	}
	delete(r.s.tags, id)
	for _, p := range r.s.posts {
		p.TagIDs = without(p.TagIDs, []string{id})
	}
	return true, nil
}

func (r *TagRepository) TagsForPost(ctx context.Context, postID string) ([]models.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[postID]
	if !ok {
		return []models.Tag{}, nil
	}
	return r.s.postLocked(p).Tags, nil
}

func (r *TagRepository) PopularTags(ctx context.Context, limit int) ([]models.Tag, error) {
	r.s.mu.RLock()
	tags := r.allLocked("")
	r.s.mu.RUnlock()

	repositories.SortByPopularity(tags)
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

func (r *TagRepository) AddTagsToPost(ctx context.Context, postID string, tagIDs []string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[postID]
	if !ok {
		return false, nil
	}
	changed := false
	for _, id := range r.s.knownTagIDsLocked(tagIDs) {
		if containsID(p.TagIDs, id) {
			continue
		}
		p.TagIDs = append(p.TagIDs, id)
		changed = true
	}
	return changed, nil
}

func (r *TagRepository) RemoveTagsFromPost(ctx context.Context, postID string, tagIDs []string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[postID]
	if !ok {
		return false, nil
	}
	before := len(p.TagIDs)
	p.TagIDs = without(p.TagIDs, tagIDs)
	return len(p.TagIDs) != before, nil
}

func (r *TagRepository) SetPostTags(ctx context.Context, postID string, tagIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[postID]
	if !ok {
		return fmt.Errorf("post %s: %w", postID, repositories.ErrNotFound)
	}
	p.TagIDs = r.s.knownTagIDsLocked(tagIDs)
	return nil
}

func without(ids, remove []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !containsID(remove, id) {
			out = append(out, id)
		}
	}
	return out
}
