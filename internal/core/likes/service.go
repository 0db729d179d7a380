package likes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type likeService struct {
	repo   Repository
	logger *slog.Logger
}

// NewLikeService creates a new like service
func NewLikeService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &likeService{repo: repo, logger: logger}
}

func (s *likeService) ToggleLike(ctx context.Context, userID, blogID string) (*Like, error) {
	userID, blogID = strings.TrimSpace(userID), strings.TrimSpace(blogID)
	if userID == "" || blogID == "" {
		return nil, ErrMissingField
	}

	exists, err := s.repo.Exists(ctx, userID, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to check like: %w", err)
	}
	if exists {
		if err := s.repo.DeleteByUserAndBlog(ctx, userID, blogID); err != nil {
			return nil, fmt.Errorf("failed to unlike: %w", err)
		}
		s.logger.Info("post unliked", "blogId", blogID, "userId", userID)
		return nil, nil
	}

	like := &Like{
		ID:        uuid.NewString(),
		BlogID:    blogID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, like); err != nil {
		return nil, fmt.Errorf("failed to like: %w", err)
	}
	s.logger.Info("post liked", "blogId", blogID, "userId", userID)
	return like, nil
}

func (s *likeService) HasLiked(ctx context.Context, userID, blogID string) (bool, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(blogID) == "" {
		return false, ErrMissingField
	}
	return s.repo.Exists(ctx, userID, blogID)
}

func (s *likeService) ListByBlog(ctx context.Context, blogID string) ([]*Like, error) {
	if strings.TrimSpace(blogID) == "" {
		return nil, ErrMissingField
	}
	return s.repo.ListByBlog(ctx, blogID)
}

func (s *likeService) CountByBlog(ctx context.Context, blogID string) (int64, error) {
	if strings.TrimSpace(blogID) == "" {
		return 0, ErrMissingField
	}
	return s.repo.CountByBlog(ctx, blogID)
}

func (s *likeService) DeleteByBlog(ctx context.Context, blogID string) (int64, error) {
	if strings.TrimSpace(blogID) == "" {
		return 0, ErrMissingField
	}
	n, err := s.repo.DeleteByBlog(ctx, blogID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("likes removed with post", "blogId", blogID, "count", n)
	return n, nil
}
