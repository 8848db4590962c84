package feed

import (
	"context"
	"errors"

	"readycleans/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	ErrPostNotFound       = errors.New("blog post not found")
	ErrGenerationDisabled = errors.New("blog generation is not configured")
)

var (
	postsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readycleans_blog_posts_generated_total",
		Help: "Blog posts generated and stored.",
	})
	postsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readycleans_blog_posts_failed_total",
		Help: "Blog generations that failed.",
	})
)

// Service is the read and write path for blog posts. The cache is optional.
type Service struct {
	store   *FileStore
	cache   PostCache
	creator *Creator
	logger  *zap.Logger
}

func NewService(store *FileStore, cache PostCache, creator *Creator, logger *zap.Logger) *Service {
	return &Service{store: store, cache: cache, creator: creator, logger: logger}
}

// List returns every post, newest first.
func (s *Service) List(ctx context.Context) ([]models.BlogPost, error) {
	if s.cache != nil {
		posts, ok, err := s.cache.GetPosts(ctx)
		if err != nil {
			s.logger.Warn("blog cache read failed", zap.Error(err))
		} else if ok {
			return posts, nil
		}
	}

	stored, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	posts := make([]models.BlogPost, len(stored))
	for i, p := range stored {
		posts[len(stored)-1-i] = p
	}

	if s.cache != nil {
		if err := s.cache.SetPosts(ctx, posts); err != nil {
			s.logger.Warn("blog cache write failed", zap.Error(err))
		}
	}
	return posts, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.BlogPost, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return models.BlogPost{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.BlogPost{}, ErrPostNotFound
}

// Generate drafts one post, appends it to the store and drops the cached list.
func (s *Service) Generate(ctx context.Context) (models.BlogPost, error) {
	if s.creator == nil {
		postsFailed.Inc()
		return models.BlogPost{}, ErrGenerationDisabled
	}
	post, err := s.creator.Create(ctx)
	if err != nil {
		postsFailed.Inc()
		return models.BlogPost{}, err
	}
	total, err := s.store.Append(post)
	if err != nil {
		postsFailed.Inc()
		return models.BlogPost{}, err
	}
	postsGenerated.Inc()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("blog cache invalidate failed", zap.Error(err))
		}
	}
	s.logger.Info("blog post generated",
		zap.String("id", post.ID),
		zap.String("title", post.Title),
		zap.Int("total", total))
	return post, nil
}
