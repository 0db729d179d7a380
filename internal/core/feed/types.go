package feed

import (
	"time"
)

// DisplayPost is a post joined with its author's display identity, resolved
// live per request. AuthorName always holds something readable; when the
// user service cannot answer it holds the fallback, never empty.
type DisplayPost struct {
	ID           string    `json:"id"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar,omitempty"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"creationDate"`
}

// FeedPage is one cursor-paginated slice of the feed. Produced fresh per
// request, never persisted.
type FeedPage struct {
	Content    []DisplayPost `json:"content"`
	NextCursor string        `json:"nextCursor,omitempty"`
	HasMore    bool          `json:"hasMore"`
	Size       int           `json:"size"`
}

// PageResponse is the offset-paginated variant. TotalElements comes from a
// separate count query and is not transactionally consistent with Content:
// concurrent writes between the two queries can skew TotalPages. Accepted
// tradeoff, not worth a transaction.
type PageResponse struct {
	Content        []DisplayPost `json:"content"`
	Page           int           `json:"page"`
	Size           int           `json:"size"`
	TotalElements  int64         `json:"totalElements"`
	TotalPages     int           `json:"totalPages"`
	HasNext        bool          `json:"hasNext"`
	HasPrevious    bool          `json:"hasPrevious"`
	NextCursor     string        `json:"nextCursor,omitempty"`
	PreviousCursor string        `json:"previousCursor,omitempty"`
}
