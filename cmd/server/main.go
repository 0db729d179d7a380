package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/api/routes"
	"Inkwell/internal/config"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/feed"
	"Inkwell/internal/core/images"
	"Inkwell/internal/core/likes"
	"Inkwell/internal/core/posts"
	"Inkwell/internal/db/mongodb"
	"Inkwell/internal/db/rediscache"
	"Inkwell/internal/userinfo"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Warn("mongo disconnect failed", "err", err)
		}
	}()
	logger.Info("connected to content store", "database", cfg.MongoDatabase)

	// The user service channel is created once and shared by every feed
	// request. Failing to create it means the feed can never be enriched,
	// so startup aborts rather than limping along.
	userClient, err := userinfo.Dial(cfg.UserServiceAddr, cfg.UserLookupTimeout, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := userClient.Close(); err != nil {
			logger.Warn("user info channel close failed", "err", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDatabase)

	postRepo, err := mongodb.NewPostRepository(ctx, db)
	if err != nil {
		return err
	}
	commentRepo, err := mongodb.NewCommentRepository(ctx, db)
	if err != nil {
		return err
	}
	likeRepo, err := mongodb.NewLikeRepository(ctx, db)
	if err != nil {
		return err
	}
	imageRepo := mongodb.NewImageRepository(db)

	var blogRepo posts.Repository = postRepo
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()
		blogRepo = rediscache.NewPostCache(redisClient, postRepo, cfg.CacheTTL, logger)
		logger.Info("post cache enabled", "ttl", cfg.CacheTTL)
	}

	postService := posts.NewPostService(blogRepo, logger)
	feedService := feed.NewFeedService(postRepo, userClient, logger)
	commentService := comments.NewCommentService(commentRepo, logger)
	likeService := likes.NewLikeService(likeRepo, logger)
	imageService := images.NewImageService(imageRepo, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	r.Use(rateLimiter.Middleware)

	routes.RegisterBlogRoutes(r, postService, feedService)
	routes.RegisterCommentRoutes(r, commentService)
	routes.RegisterLikeRoutes(r, likeService)
	routes.RegisterImageRoutes(r, imageService)
	routes.RegisterHealthRoutes(r, mongoClient, userClient)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
