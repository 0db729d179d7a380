package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Inkwell/internal/core/comments"
)

// CommentRepository implements comments.Repository on the comment collection.
type CommentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository creates the repository and ensures the blogId index
// used by per-post listings.
func NewCommentRepository(ctx context.Context, db *mongo.Database) (*CommentRepository, error) {
	coll := db.Collection("comment")
	if err := ensureIndex(ctx, coll, bson.D{{Key: "blogId", Value: 1}, {Key: "createdAt", Value: 1}}, false); err != nil {
		return nil, err
	}
	return &CommentRepository{coll: coll}, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *comments.Comment) error {
	_, err := r.coll.InsertOne(ctx, comment)
	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	var c comments.Comment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, comments.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByBlog returns a post's comments oldest first, the order they read in.
func (r *CommentRepository) ListByBlog(ctx context.Context, blogID string) ([]*comments.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"blogId": blogID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*comments.Comment, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*comments.Comment, error) {
	var c comments.Comment
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, comments.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return comments.ErrNotFound
	}
	return nil
}
