package likes

import (
	"context"
	"time"
)

// Like marks that one user liked one blog post. At most one per
// (user, blog) pair; the store enforces uniqueness.
type Like struct {
	ID        string    `bson:"_id" json:"id"`
	BlogID    string    `bson:"blogId" json:"blogId"`
	UserID    string    `bson:"userId" json:"userId"`
	CreatedAt time.Time `bson:"createdAt" json:"creationDate"`
}

// Service defines the business logic interface for likes
type Service interface {
	// ToggleLike likes the post when no like exists, unlikes otherwise.
	// Returns the created like, or nil when the toggle removed one.
	ToggleLike(ctx context.Context, userID, blogID string) (*Like, error)

	// HasLiked reports whether the user has liked the post
	HasLiked(ctx context.Context, userID, blogID string) (bool, error)

	// ListByBlog returns all likes on a post
	ListByBlog(ctx context.Context, blogID string) ([]*Like, error)

	// CountByBlog returns the number of likes on a post
	CountByBlog(ctx context.Context, blogID string) (int64, error)

	// DeleteByBlog removes every like on a post (post deletion cleanup);
	// returns how many were removed
	DeleteByBlog(ctx context.Context, blogID string) (int64, error)
}

// Repository defines the data access interface for likes
type Repository interface {
	Create(ctx context.Context, like *Like) error
	Exists(ctx context.Context, userID, blogID string) (bool, error)
	DeleteByUserAndBlog(ctx context.Context, userID, blogID string) error
	ListByBlog(ctx context.Context, blogID string) ([]*Like, error)
	CountByBlog(ctx context.Context, blogID string) (int64, error)
	DeleteByBlog(ctx context.Context, blogID string) (int64, error)
}
