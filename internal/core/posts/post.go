package posts

import (
	"time"
)

// Post is a blog post as stored in the content store.
// CreatedAt is assigned once at creation and is the sole ordering key for
// the feed; nothing after creation is allowed to change it. Edits go
// through UpdatePostRequest, which cannot carry the field at all.
type Post struct {
	ID        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	CreatedAt time.Time `bson:"createdAt" json:"creationDate"`
	ImageURL  string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// CreatePostRequest represents input for creating a new post.
// The author ID comes from the X-User-Id header, not the body.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// UpdatePostRequest carries the editable fields of a post. Nil means
// "leave unchanged". CreatedAt and AuthorID are deliberately absent.
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}
