package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Inkwell/internal/core/posts"
)

// feedSort orders feed queries. The compound (createdAt, _id) descending
// comparator keeps a page stable when posts share a creation instant; the
// cursor itself only carries the timestamp, so the cross-page tie gap
// documented in the feed package remains.
var feedSort = bson.D{
	{Key: "createdAt", Value: -1},
	{Key: "_id", Value: -1},
}

// PostRepository implements posts.Repository and feed.PostGateway on the
// blog collection.
type PostRepository struct {
	coll *mongo.Collection
}

// NewPostRepository creates the repository and ensures the indexes the
// feed queries rely on: (createdAt DESC, _id DESC) for range scans and
// authorId for per-author listings.
func NewPostRepository(ctx context.Context, db *mongo.Database) (*PostRepository, error) {
	coll := db.Collection("blog")
	if err := ensureIndex(ctx, coll, feedSort, false); err != nil {
		return nil, err
	}
	if err := ensureIndex(ctx, coll, bson.D{{Key: "authorId", Value: 1}}, false); err != nil {
		return nil, err
	}
	return &PostRepository{coll: coll}, nil
}

func (r *PostRepository) Create(ctx context.Context, post *posts.Post) error {
	_, err := r.coll.InsertOne(ctx, post)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	var post posts.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]*posts.Post, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(feedSort))
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*posts.Post, error) {
	return r.find(ctx, bson.M{"authorId": authorID}, options.Find().SetSort(feedSort))
}

func (r *PostRepository) SearchByTitle(ctx context.Context, query string) ([]*posts.Post, error) {
	filter := bson.M{"title": bson.M{"$regex": primitive.Regex{
		Pattern: regexp.QuoteMeta(query),
		Options: "i",
	}}}
	return r.find(ctx, filter, options.Find().SetSort(feedSort))
}

// Update applies a field-limited $set. createdAt can never appear in the
// update document: the feed cursor orders on it, and nothing else in the
// system would catch a mutated value.
func (r *PostRepository) Update(ctx context.Context, id string, req posts.UpdatePostRequest) (*posts.Post, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.ImageURL != nil {
		set["imageUrl"] = *req.ImageURL
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var post posts.Post
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return posts.ErrNotFound
	}
	return nil
}

// ListNewest implements the first feed page: the limit most recent posts.
func (r *PostRepository) ListNewest(ctx context.Context, limit int) ([]*posts.Post, error) {
	opts := options.Find().SetSort(feedSort).SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

// ListBefore implements subsequent feed pages: posts created strictly
// before the cursor boundary.
func (r *PostRepository) ListBefore(ctx context.Context, before time.Time, limit int) ([]*posts.Post, error) {
	filter := bson.M{"createdAt": bson.M{"$lt": before}}
	opts := options.Find().SetSort(feedSort).SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// ListPage implements the offset variant (page is zero-based).
func (r *PostRepository) ListPage(ctx context.Context, page, size int) ([]*posts.Post, error) {
	opts := options.Find().
		SetSort(feedSort).
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size))
	return r.find(ctx, bson.M{}, opts)
}

// Count returns the total number of posts. Separate query from any page
// fetch; the feed layer documents the consistency tradeoff.
func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *PostRepository) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]*posts.Post, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*posts.Post, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return out, nil
}
