package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"blog-backend/feeder"
	"blog-backend/internal/logger"
	"blog-backend/models"
)

const (
	DefaultImportLimit = 20
	MaxImportLimit     = 100
)

// FeedFetcher downloads the items of an external feed.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string, limit int) ([]feeder.Item, error)
}

// ImportRequest describes one feed import. Author overrides the item authors
// when set; TagIDs are attached to every imported post in addition to the
// tags matched or created from item categories.
type ImportRequest struct {
	URL    string
	Limit  int
	Author string
	TagIDs []string
}

// ImportResult lists the posts created and the number of items skipped
// because a post with the same slug already exists.
type ImportResult struct {
	Created []models.BlogSummary `json:"created"`
	Skipped int                  `json:"skipped"`
}

// ImportService creates posts from the items of an RSS or Atom feed.
type ImportService struct {
	blog    *BlogService
	tags    *TagService
	fetcher FeedFetcher
}

func NewImportService(blog *BlogService, tags *TagService, fetcher FeedFetcher) *ImportService {
	return &ImportService{blog: blog, tags: tags, fetcher: fetcher}
}

// Import fetches the feed and creates one post per item. Items whose slug is
// already taken are skipped, so importing the same feed twice is harmless.
func (s *ImportService) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	u, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: url must be an absolute http(s) url", ErrValidation)
	}

	items, err := s.fetcher.Fetch(ctx, u.String(), clampLimit(req.Limit, DefaultImportLimit, MaxImportLimit))
	if err != nil {
		logger.WarnWithFields("feed fetch failed", logger.Fields{"url": u.String(), "error": err.Error()})
		return nil, fmt.Errorf("%w: feed %s could not be fetched", ErrUpstream, u.Host)
	}

	result := &ImportResult{Created: []models.BlogSummary{}}
	for _, item := range items {
		if item.Title == "" {
			result.Skipped++
			continue
		}

		tagIDs, err := s.tagIDsFor(ctx, item.Categories)
		if err != nil {
			return nil, err
		}
		author := strings.TrimSpace(req.Author)
		if author == "" {
			author = item.Author
		}

		post, err := s.blog.CreatePost(ctx, models.BlogPost{
			Title:   item.Title,
			Slug:    Slugify(item.Title),
			Content: item.Content,
			Author:  author,
			TagIDs:  append(append([]string{}, req.TagIDs...), tagIDs...),
		})
		if errors.Is(err, ErrConflict) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Created = append(result.Created, models.NewBlogSummary(*post))
	}

	logger.InfoWithFields("feed imported", logger.Fields{
		"url":     u.String(),
		"created": len(result.Created),
		"skipped": result.Skipped,
	})
	return result, nil
}

// tagIDsFor resolves category names to tags, creating the missing ones.
func (s *ImportService) tagIDsFor(ctx context.Context, categories []string) ([]string, error) {
	var ids []string
	for _, name := range categories {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := s.tags.GetTagByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag, err = s.tags.CreateTag(ctx, models.Tag{Name: name})
			if errors.Is(err, ErrConflict) {
				// Created concurrently; read it back.
				tag, err = s.tags.GetTagByName(ctx, name)
			}
			if err != nil {
				return nil, err
			}
			if tag == nil {
				continue
			}
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}
