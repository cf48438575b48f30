// Package memory provides the in-memory reference implementation of the
// repository contracts. It backs the "memory" storage driver and the tests.
package memory

import (
	"sort"
	"strings"
	"sync"

	"blog-backend/models"
	"blog-backend/repositories"
)

// Store holds posts, tags and their associations behind one lock so that the
// post and tag repositories observe a consistent view.
type Store struct {
	mu    sync.RWMutex
	posts map[string]*models.BlogPost
	tags  map[string]*models.Tag
}

func NewStore() *Store {
	return &Store{
		posts: make(map[string]*models.BlogPost),
		tags:  make(map[string]*models.Tag),
	}
}

// Posts returns a BlogRepository backed by the store.
func (s *Store) Posts() *PostRepository {
	return &PostRepository{s: s}
}

// Tags returns a TagRepository backed by the store.
func (s *Store) Tags() *TagRepository {
	return &TagRepository{s: s}
}

// postCountLocked counts posts referencing tagID. Caller holds s.mu.
func (s *Store) postCountLocked(tagID string) int64 {
	var n int64
	for _, p := range s.posts {
		if containsID(p.TagIDs, tagID) {
			n++
		}
	}
	return n
}

func (s *Store) tagLocked(id string) (models.Tag, bool) {
	t, ok := s.tags[id]
	if !ok {
		return models.Tag{}, false
	}
	out := *t
	out.PostCount = s.postCountLocked(id)
	return out, true
}

// postLocked returns a detached copy of a post with Tags hydrated.
func (s *Store) postLocked(p *models.BlogPost) models.BlogPost {
	out := *p
	out.TagIDs = append([]string(nil), p.TagIDs...)
	out.Tags = make([]models.Tag, 0, len(p.TagIDs))
	for _, id := range p.TagIDs {
		if t, ok := s.tagLocked(id); ok {
			out.Tags = append(out.Tags, t)
		}
	}
	return out
}

func (s *Store) knownTagIDsLocked(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := s.tags[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func paginate[T any](items []T, page, pageSize int) []T {
	page, pageSize = repositories.NormalizePage(page, pageSize)
	start := repositories.Offset(page, pageSize)
	if start >= int64(len(items)) {
		return []T{}
	}
	end := min(int(start)+pageSize, len(items))
	return items[start:end]
}

func sortTagsByName(tags []models.Tag) {
	sort.SliceStable(tags, func(i, j int) bool {
		a, b := strings.ToLower(tags[i].Name), strings.ToLower(tags[j].Name)
		if a != b {
			return a < b
		}
		return tags[i].ID < tags[j].ID
	})
}
