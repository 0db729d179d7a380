package feed

import (
	"context"
	"log/slog"

	"Inkwell/internal/core/posts"
)

const (
	// DefaultPageSize applies when the caller does not ask for a size
	DefaultPageSize = 10

	// MaxPageSize caps a page. Every item costs one bounded author lookup
	// in the worst case, so large pages multiply worst-case latency.
	MaxPageSize = 100
)

type feedService struct {
	gateway   PostGateway
	directory Directory
	logger    *slog.Logger
}

// NewFeedService creates a new feed service
func NewFeedService(gateway PostGateway, directory Directory, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedService{
		gateway:   gateway,
		directory: directory,
		logger:    logger,
	}
}

// GetFeed assembles one page of the infinite-scroll feed.
//
// It over-fetches size+1 rows: the extra row only proves whether a next
// page exists and is never returned. NextCursor encodes the creation time
// of the last returned item.
//
// The cursor carries only a timestamp. The store orders (createdAt, _id)
// descending so a single page is stable, but posts sharing the boundary
// instant can still be skipped between pages. Known boundary condition.
func (s *feedService) GetFeed(ctx context.Context, cursor string, size int) (*FeedPage, error) {
	size, err := normalizeSize(size)
	if err != nil {
		return nil, err
	}

	fetch := size + 1
	var page *FeedPage

	if cursor == "" {
		items, err := s.gateway.ListNewest(ctx, fetch)
		if err != nil {
			s.logger.Error("feed query failed", "err", err)
			return emptyFeedPage(), nil
		}
		page = s.buildFeedPage(ctx, items, size)
	} else {
		before, err := DecodeCursor(cursor)
		if err != nil {
			return nil, err
		}
		items, err := s.gateway.ListBefore(ctx, before, fetch)
		if err != nil {
			s.logger.Error("feed query failed", "cursor", cursor, "err", err)
			return emptyFeedPage(), nil
		}
		page = s.buildFeedPage(ctx, items, size)
	}

	return page, nil
}

// GetPage assembles one offset-paginated page. The count and the page fetch
// are separate queries; see PageResponse for the consistency caveat.
func (s *feedService) GetPage(ctx context.Context, page, size int) (*PageResponse, error) {
	if page < 0 {
		return nil, NewValidationError("page", "page must not be negative")
	}
	size, err := normalizeSize(size)
	if err != nil {
		return nil, err
	}

	items, err := s.gateway.ListPage(ctx, page, size)
	if err != nil {
		s.logger.Error("paginated feed query failed", "page", page, "err", err)
		return emptyPageResponse(page, size), nil
	}
	total, err := s.gateway.Count(ctx)
	if err != nil {
		s.logger.Error("feed count failed", "err", err)
		return emptyPageResponse(page, size), nil
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	resp := &PageResponse{
		Content:       s.compose(ctx, items),
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       page < totalPages-1,
		HasPrevious:   page > 0,
	}
	if len(items) > 0 {
		resp.NextCursor = EncodeCursor(items[len(items)-1].CreatedAt)
		resp.PreviousCursor = EncodeCursor(items[0].CreatedAt)
	}
	return resp, nil
}

// GetDisplay enriches one post. Unlike the feed paths a missing post is the
// caller's problem and surfaces as-is; author resolution still falls back.
func (s *feedService) GetDisplay(ctx context.Context, id string) (*DisplayPost, error) {
	post, err := s.gateway.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	display := s.compose(ctx, []*posts.Post{post})
	return &display[0], nil
}

func normalizeSize(size int) (int, error) {
	if size == 0 {
		return DefaultPageSize, nil
	}
	if size < 0 {
		return 0, NewValidationError("size", "size must be positive")
	}
	if size > MaxPageSize {
		return 0, NewValidationError("size", "size must not exceed 100")
	}
	return size, nil
}

func emptyFeedPage() *FeedPage {
	return &FeedPage{Content: []DisplayPost{}}
}

func emptyPageResponse(page, size int) *PageResponse {
	return &PageResponse{Content: []DisplayPost{}, Page: page, Size: size}
}
