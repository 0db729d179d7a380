package feed

import (
	"context"
	"time"

	"Inkwell/internal/core/posts"
	"Inkwell/internal/userinfo"
)

// Service defines the feed business logic interface
type Service interface {
	// GetFeed returns one cursor-paginated page of the feed, newest first.
	// An empty cursor starts from the top. Store failures come back as an
	// empty page; only a malformed cursor is an error.
	GetFeed(ctx context.Context, cursor string, size int) (*FeedPage, error)

	// GetPage returns one offset-paginated page with total counts.
	GetPage(ctx context.Context, page, size int) (*PageResponse, error)

	// GetDisplay returns a single post joined with its author's display
	// identity, the same composition a feed page applies.
	GetDisplay(ctx context.Context, id string) (*DisplayPost, error)
}

// PostGateway is the narrow slice of the content store the feed needs:
// ordered range queries by creation time, offset pages, and a full count.
// All queries return posts in createdAt-descending order, ties broken by
// descending id so a single page is internally stable.
type PostGateway interface {
	// GetByID returns one post
	GetByID(ctx context.Context, id string) (*posts.Post, error)

	// ListNewest returns the limit most recent posts
	ListNewest(ctx context.Context, limit int) ([]*posts.Post, error)

	// ListBefore returns the limit most recent posts created strictly
	// before the given instant
	ListBefore(ctx context.Context, before time.Time, limit int) ([]*posts.Post, error)

	// ListPage returns one offset page (page is zero-based)
	ListPage(ctx context.Context, page, size int) ([]*posts.Post, error)

	// Count returns the total number of posts
	Count(ctx context.Context) (int64, error)
}

// Directory resolves author ids to display identities. One call per page;
// ids missing from the result could not be resolved and get the fallback.
type Directory interface {
	LookupAll(ctx context.Context, userIDs []string) map[string]userinfo.UserInfo
}
