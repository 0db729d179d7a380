package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type commentService struct {
	repo   Repository
	logger *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{repo: repo, logger: logger}
}

func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest, userID string) (*Comment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingUser
	}
	if strings.TrimSpace(req.BlogID) == "" {
		return nil, NewValidationError("blogId", "blogId must not be empty")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, NewValidationError("content", "content must not be empty")
	}

	comment := &Comment{
		ID:        uuid.NewString(),
		BlogID:    req.BlogID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created", "commentId", comment.ID, "blogId", comment.BlogID)
	return comment, nil
}

func (s *commentService) GetComment(ctx context.Context, id string) (*Comment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *commentService) ListByBlog(ctx context.Context, blogID string) ([]*Comment, error) {
	if strings.TrimSpace(blogID) == "" {
		return nil, NewValidationError("blogId", "blogId must not be empty")
	}
	return s.repo.ListByBlog(ctx, blogID)
}

func (s *commentService) UpdateComment(ctx context.Context, id, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "content must not be empty")
	}
	return s.repo.UpdateContent(ctx, id, content)
}

func (s *commentService) DeleteComment(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("comment deleted", "commentId", id)
	return nil
}
