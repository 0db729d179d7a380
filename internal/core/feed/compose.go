package feed

import (
	"context"

	"Inkwell/internal/core/posts"
)

// FallbackAuthorName substitutes for authors the user service could not
// resolve. A post is never dropped from a page because of its author.
const FallbackAuthorName = "Unknown User"

// buildFeedPage truncates an over-fetched batch to the requested size,
// derives HasMore from the extra row, and composes display items.
func (s *feedService) buildFeedPage(ctx context.Context, items []*posts.Post, size int) *FeedPage {
	hasMore := len(items) > size
	if hasMore {
		items = items[:size]
	}

	page := &FeedPage{
		Content: s.compose(ctx, items),
		HasMore: hasMore,
	}
	page.Size = len(page.Content)
	if hasMore && len(items) > 0 {
		page.NextCursor = EncodeCursor(items[len(items)-1].CreatedAt)
	}
	return page
}

// compose joins a batch of posts with their authors' display identities.
// One directory call per page; each post whose author is missing from the
// result, or resolved with an empty name, gets the fallback display.
func (s *feedService) compose(ctx context.Context, items []*posts.Post) []DisplayPost {
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.AuthorID)
	}
	resolved := s.directory.LookupAll(ctx, ids)

	out := make([]DisplayPost, 0, len(items))
	for _, p := range items {
		d := DisplayPost{
			ID:         p.ID,
			AuthorName: FallbackAuthorName,
			Title:      p.Title,
			Content:    p.Content,
			ImageURL:   p.ImageURL,
			CreatedAt:  p.CreatedAt,
		}
		if info, ok := resolved[p.AuthorID]; ok && info.Name != "" {
			d.AuthorName = info.Name
			d.AuthorAvatar = info.Avatar
		}
		out = append(out, d)
	}
	return out
}
