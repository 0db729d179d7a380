// Package rediscache adds a Redis read-through cache in front of the post
// repository. Only point lookups are cached: feed pages are always computed
// fresh, so caching them would violate the feed's consistency story for no
// win. Cache errors never fail a request; the store stays authoritative.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"Inkwell/internal/core/posts"
)

const keyPrefix = "post:"

// PostCache wraps a posts.Repository with cached GetByID.
type PostCache struct {
	client *redis.Client
	next   posts.Repository
	ttl    time.Duration
	logger *slog.Logger
}

// NewPostCache creates the cache wrapper.
func NewPostCache(client *redis.Client, next posts.Repository, ttl time.Duration, logger *slog.Logger) *PostCache {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PostCache{client: client, next: next, ttl: ttl, logger: logger}
}

func (c *PostCache) Create(ctx context.Context, post *posts.Post) error {
	if err := c.next.Create(ctx, post); err != nil {
		return err
	}
	c.store(ctx, post)
	return nil
}

func (c *PostCache) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	if post := c.load(ctx, id); post != nil {
		return post, nil
	}
	post, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, post)
	return post, nil
}

func (c *PostCache) Update(ctx context.Context, id string, req posts.UpdatePostRequest) (*posts.Post, error) {
	post, err := c.next.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	c.store(ctx, post)
	return post, nil
}

func (c *PostCache) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	if err := c.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", "postId", id, "err", err)
	}
	return nil
}

// List queries pass straight through; only point lookups are cached.

func (c *PostCache) List(ctx context.Context) ([]*posts.Post, error) {
	return c.next.List(ctx)
}

func (c *PostCache) ListByAuthor(ctx context.Context, authorID string) ([]*posts.Post, error) {
	return c.next.ListByAuthor(ctx, authorID)
}

func (c *PostCache) SearchByTitle(ctx context.Context, query string) ([]*posts.Post, error) {
	return c.next.SearchByTitle(ctx, query)
}

func (c *PostCache) store(ctx context.Context, post *posts.Post) {
	raw, err := json.Marshal(post)
	if err != nil {
		c.logger.Warn("cache encode failed", "postId", post.ID, "err", err)
		return
	}
	if err := c.client.Set(ctx, keyPrefix+post.ID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache store failed", "postId", post.ID, "err", err)
	}
}

func (c *PostCache) load(ctx context.Context, id string) *posts.Post {
	raw, err := c.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		c.logger.Warn("cache load failed", "postId", id, "err", err)
		return nil
	}
	var post posts.Post
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		c.logger.Warn("cache decode failed", "postId", id, "err", err)
		return nil
	}
	return &post
}
