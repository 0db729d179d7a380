package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type postService struct {
	repo   Repository
	logger *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{repo: repo, logger: logger}
}

func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest, userID string) (*Post, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingUser
	}
	// Post authors must be canonical UUIDs; the user service keys on them.
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUser, userID)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "title must not be empty")
	}

	post := &Post{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  userID,
		CreatedAt: time.Now().UTC(),
		ImageURL:  req.ImageURL,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created", "postId", post.ID, "authorId", userID)
	return post, nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) ListPosts(ctx context.Context) ([]*Post, error) {
	return s.repo.List(ctx)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID string) ([]*Post, error) {
	if _, err := uuid.Parse(strings.TrimSpace(authorID)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUser, authorID)
	}
	return s.repo.ListByAuthor(ctx, strings.TrimSpace(authorID))
}

func (s *postService) SearchByTitle(ctx context.Context, query string) ([]*Post, error) {
	if strings.TrimSpace(query) == "" {
		return nil, NewValidationError("title", "search query must not be empty")
	}
	return s.repo.SearchByTitle(ctx, query)
}

func (s *postService) UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, NewValidationError("title", "title must not be empty")
	}

	post, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post updated", "postId", id)
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("post deleted", "postId", id)
	return nil
}
