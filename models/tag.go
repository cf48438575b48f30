package models

import "time"

// Tag labels blog posts.
// Collection: tags
//
// PostCount is derived from post associations and ignored on input.
type Tag struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	PostCount int64     `bson:"-" json:"postCount"`
}
