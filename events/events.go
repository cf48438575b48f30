package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a domain event.
type EventType string

const (
	PostCreated  EventType = "post.created"
	PostUpdated  EventType = "post.updated"
	PostDeleted  EventType = "post.deleted"
	PostFeatured EventType = "post.featured"

	TagCreated      EventType = "tag.created"
	TagUpdated      EventType = "tag.updated"
	TagDeleted      EventType = "tag.deleted"
	PostTagsChanged EventType = "post.tags_changed"
)

const (
	SourceAPI = "blog-api"
	Version   = "1"
)

// Event is implemented by every domain event.
type Event interface {
	GetID() string
	GetType() EventType
}

// BaseEvent is embedded in every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func NewBaseEvent(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Source:    SourceAPI,
		Version:   Version,
	}
}

func (e BaseEvent) GetID() string      { return e.ID }
func (e BaseEvent) GetType() EventType { return e.Type }

// PostEvent is published for post.created, post.updated, post.deleted and
// post.featured.
type PostEvent struct {
	BaseEvent
	PostID     string   `json:"post_id"`
	Slug       string   `json:"slug,omitempty"`
	Title      string   `json:"title,omitempty"`
	IsFeatured bool     `json:"is_featured"`
	TagIDs     []string `json:"tag_ids,omitempty"`
}

func NewPostEvent(t EventType, postID string) PostEvent {
	return PostEvent{BaseEvent: NewBaseEvent(t), PostID: postID}
}

// TagEvent is published for tag.created, tag.updated and tag.deleted.
type TagEvent struct {
	BaseEvent
	TagID string `json:"tag_id"`
	Name  string `json:"name,omitempty"`
}

func NewTagEvent(t EventType, tagID, name string) TagEvent {
	return TagEvent{BaseEvent: NewBaseEvent(t), TagID: tagID, Name: name}
}

// PostTagsChangedEvent records tags attached to or detached from a post.
type PostTagsChangedEvent struct {
	BaseEvent
	PostID  string   `json:"post_id"`
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
}

func NewPostTagsChangedEvent(postID string, added, removed []string) PostTagsChangedEvent {
	return PostTagsChangedEvent{
		BaseEvent: NewBaseEvent(PostTagsChanged),
		PostID:    postID,
		Added:     added,
		Removed:   removed,
	}
}
