package images

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type imageService struct {
	repo   Repository
	logger *slog.Logger
}

// NewImageService creates a new image service
func NewImageService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &imageService{repo: repo, logger: logger}
}

func (s *imageService) CreateImage(ctx context.Context, req CreateImageRequest) (*Image, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("image url must not be empty")
	}

	image := &Image{
		ID:        uuid.NewString(),
		Name:      req.Name,
		URL:       req.URL,
		Type:      req.Type,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	s.logger.Info("image registered", "imageId", image.ID)
	return image, nil
}

func (s *imageService) GetImage(ctx context.Context, id string) (*Image, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *imageService) ListImages(ctx context.Context) ([]*Image, error) {
	return s.repo.List(ctx)
}

func (s *imageService) DeleteImage(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
