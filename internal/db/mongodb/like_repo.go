package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"Inkwell/internal/core/likes"
)

// LikeRepository implements likes.Repository on the like collection.
type LikeRepository struct {
	coll *mongo.Collection
}

// NewLikeRepository creates the repository. The unique (userId, blogId)
// index makes double-likes a write conflict instead of a data bug.
func NewLikeRepository(ctx context.Context, db *mongo.Database) (*LikeRepository, error) {
	coll := db.Collection("like")
	if err := ensureIndex(ctx, coll, bson.D{{Key: "userId", Value: 1}, {Key: "blogId", Value: 1}}, true); err != nil {
		return nil, err
	}
	if err := ensureIndex(ctx, coll, bson.D{{Key: "blogId", Value: 1}}, false); err != nil {
		return nil, err
	}
	return &LikeRepository{coll: coll}, nil
}

func (r *LikeRepository) Create(ctx context.Context, like *likes.Like) error {
	_, err := r.coll.InsertOne(ctx, like)
	return err
}

func (r *LikeRepository) Exists(ctx context.Context, userID, blogID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"userId": userID, "blogId": blogID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *LikeRepository) DeleteByUserAndBlog(ctx context.Context, userID, blogID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "blogId": blogID})
	return err
}

func (r *LikeRepository) ListByBlog(ctx context.Context, blogID string) ([]*likes.Like, error) {
	cur, err := r.coll.Find(ctx, bson.M{"blogId": blogID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*likes.Like, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LikeRepository) CountByBlog(ctx context.Context, blogID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"blogId": blogID})
}

func (r *LikeRepository) DeleteByBlog(ctx context.Context, blogID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"blogId": blogID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
