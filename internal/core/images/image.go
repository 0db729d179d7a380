package images

import (
	"context"
	"errors"
	"time"
)

// Image is an uploaded image record. Only metadata lives here; the bytes
// sit behind the URL on whatever serves them.
type Image struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	URL       string    `bson:"url" json:"url"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"createdAt" json:"creationDate"`
}

// ErrNotFound is returned when an image does not exist
var ErrNotFound = errors.New("image not found")

// CreateImageRequest represents input for registering an image
type CreateImageRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Service defines the business logic interface for images
type Service interface {
	CreateImage(ctx context.Context, req CreateImageRequest) (*Image, error)
	GetImage(ctx context.Context, id string) (*Image, error)
	ListImages(ctx context.Context) ([]*Image, error)
	DeleteImage(ctx context.Context, id string) error
}

// Repository defines the data access interface for images
type Repository interface {
	Create(ctx context.Context, image *Image) error
	GetByID(ctx context.Context, id string) (*Image, error)
	List(ctx context.Context) ([]*Image, error)
	Delete(ctx context.Context, id string) error
}
