package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
	"club-app/internal/utils"
)

const (
	publishedNewsCacheKey = "news:published"
	newsCacheTTL          = 5 * time.Minute
)

type NewsRepository interface {
	Create(ctx context.Context, n *models.News) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.News, error)
	GetAll(ctx context.Context) ([]models.News, error)
	GetPublished(ctx context.Context) ([]models.News, error)
	Update(ctx context.Context, n *models.News) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type NewsService struct {
	repo  NewsRepository
	cache *utils.RedisClient
}

func NewNewsService(repo NewsRepository, cache *utils.RedisClient) *NewsService {
	return &NewsService{repo: repo, cache: cache}
}

func (s *NewsService) Create(ctx context.Context, n *models.News) error {
	if err := validateModel(n); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *NewsService) GetByID(ctx context.Context, id string) (*models.News, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *NewsService) GetAll(ctx context.Context) ([]models.News, error) {
	return s.repo.GetAll(ctx)
}

// GetPublished serves the public news feed through the cache. A cache error
// falls back to the store.
func (s *NewsService) GetPublished(ctx context.Context) ([]models.News, error) {
	if s.cache != nil {
		var cached []models.News
		err := s.cache.Get(ctx, publishedNewsCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, utils.ErrCacheMiss) {
			log.Printf("[CACHE] Failed to read published news: %v", err)
		}
	}

	items, err := s.repo.GetPublished(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, publishedNewsCacheKey, items, newsCacheTTL); err != nil {
			log.Printf("[CACHE] Failed to cache published news: %v", err)
		}
	}
	return items, nil
}

func (s *NewsService) Update(ctx context.Context, n *models.News) error {
	if n.ID.IsZero() {
		return models.ErrInvalidID
	}
	if err := validateModel(n); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, n); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	if err := s.repo.Delete(ctx, objID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *NewsService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, publishedNewsCacheKey); err != nil {
		log.Printf("[CACHE] Failed to invalidate published news: %v", err)
	}
}
