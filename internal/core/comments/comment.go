package comments

import (
	"context"
	"time"
)

// Comment belongs to one blog post. Read alongside the post, never joined
// with author display data — the feed is the only enriched surface.
type Comment struct {
	ID        string    `bson:"_id" json:"id"`
	BlogID    string    `bson:"blogId" json:"blogId"`
	UserID    string    `bson:"userId" json:"userId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"creationDate"`
}

// CreateCommentRequest represents input for creating a comment
type CreateCommentRequest struct {
	BlogID  string `json:"blogId"`
	Content string `json:"content"`
}

// Service defines the business logic interface for comments
type Service interface {
	CreateComment(ctx context.Context, req CreateCommentRequest, userID string) (*Comment, error)
	GetComment(ctx context.Context, id string) (*Comment, error)
	ListByBlog(ctx context.Context, blogID string) ([]*Comment, error)
	UpdateComment(ctx context.Context, id, content string) (*Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByBlog(ctx context.Context, blogID string) ([]*Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*Comment, error)
	Delete(ctx context.Context, id string) error
}
