package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"Inkwell/internal/core/images"
)

// ImageRepository implements images.Repository on the image_upload collection.
type ImageRepository struct {
	coll *mongo.Collection
}

// NewImageRepository creates the repository.
func NewImageRepository(db *mongo.Database) *ImageRepository {
	return &ImageRepository{coll: db.Collection("image_upload")}
}

func (r *ImageRepository) Create(ctx context.Context, image *images.Image) error {
	_, err := r.coll.InsertOne(ctx, image)
	return err
}

func (r *ImageRepository) GetByID(ctx context.Context, id string) (*images.Image, error) {
	var img images.Image
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&img)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, images.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) List(ctx context.Context) ([]*images.Image, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*images.Image, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ImageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return images.ErrNotFound
	}
	return nil
}
