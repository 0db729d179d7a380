package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost validates the author identity and stores a new post.
	// CreatedAt and the post ID are assigned here, never by the caller.
	CreatePost(ctx context.Context, req CreatePostRequest, userID string) (*Post, error)

	// GetPost retrieves a single post by ID
	GetPost(ctx context.Context, id string) (*Post, error)

	// ListPosts retrieves every post (admin/debug surface, unpaginated)
	ListPosts(ctx context.Context) ([]*Post, error)

	// ListByAuthor retrieves all posts written by one author
	ListByAuthor(ctx context.Context, authorID string) ([]*Post, error)

	// SearchByTitle retrieves posts whose title contains the query,
	// case-insensitively
	SearchByTitle(ctx context.Context, query string) ([]*Post, error)

	// UpdatePost edits title/content/image of an existing post
	UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*Post, error)

	// DeletePost removes a post by ID
	DeletePost(ctx context.Context, id string) error
}

// Repository defines the data access interface for posts.
// Implementations must never mutate CreatedAt on update: the feed cursor
// orders on it and a changed value corrupts pagination for every reader.
type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*Post, error)
	SearchByTitle(ctx context.Context, query string) ([]*Post, error)
	Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id string) error
}
