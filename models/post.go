package models

import "time"

// BlogPost is a full blog post.
// Collection: posts
//
// Tag associations are persisted as TagIDs on the post document; Tags is
// hydrated from the tags collection on read and is never stored.
type BlogPost struct {
	ID         string    `bson:"_id" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Slug       string    `bson:"slug" json:"slug"`
	Content    string    `bson:"content" json:"content"`
	Excerpt    string    `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Author     string    `bson:"author" json:"author"`
	TagIDs     []string  `bson:"tag_ids" json:"-"`
	Tags       []Tag     `bson:"-" json:"tags"`
	IsFeatured bool      `bson:"is_featured" json:"isFeatured"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
	ViewCount  int64     `bson:"view_count" json:"viewCount"`
}

// BlogSummary is the list projection of a BlogPost used by public endpoints.
type BlogSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Tags        []Tag     `json:"tags"`
	Author      string    `json:"author"`
	IsFeatured  bool      `json:"isFeatured"`
	PublishDate time.Time `json:"publishDate"`
	ViewCount   int64     `json:"viewCount"`
}

func NewBlogSummary(p BlogPost) BlogSummary {
	tags := p.Tags
	if tags == nil {
		tags = []Tag{}
	}
	return BlogSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Tags:        tags,
		Author:      p.Author,
		IsFeatured:  p.IsFeatured,
		PublishDate: p.CreatedAt,
		ViewCount:   p.ViewCount,
	}
}

func NewBlogSummaries(posts []BlogPost) []BlogSummary {
	out := make([]BlogSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewBlogSummary(p))
	}
	return out
}

// TagIDsOf returns the ids of tags in order, skipping blanks and duplicates.
func TagIDsOf(tags []Tag) []string {
	seen := make(map[string]struct{}, len(tags))
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		if t.ID == "" {
			continue
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		ids = append(ids, t.ID)
	}
	return ids
}
