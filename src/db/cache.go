package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fintrack-server/src/models"

	"github.com/dgraph-io/ristretto/v2"
)

// CachedStore serves category lists from an in-process ristretto cache.
// Category writes for a user drop that user's entry and bump its generation;
// a fill is only stored if no write happened while it was reading.
type CachedStore struct {
	Store
	cache *ristretto.Cache[string, []models.Category]
	ttl   time.Duration

	mu          sync.Mutex
	generations map[string]uint64
}

func NewCachedStore(store Store, ttl time.Duration) (*CachedStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []models.Category]{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize category cache: %w", err)
	}
	return &CachedStore{Store: store, cache: cache, ttl: ttl, generations: make(map[string]uint64)}, nil
}

func categoryCacheKey(userID string) string {
	return "categories:" + userID
}

func (s *CachedStore) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	key := categoryCacheKey(userID)
	if cats, ok := s.cache.Get(key); ok {
		return cloneCategories(cats), nil
	}
	s.mu.Lock()
	gen := s.generations[userID]
	s.mu.Unlock()

	cats, err := s.Store.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[userID] == gen {
		s.cache.SetWithTTL(key, cloneCategories(cats), int64(len(cats))+1, s.ttl)
		s.cache.Wait()
	}
	return cats, nil
}

func (s *CachedStore) CreateCategories(ctx context.Context, cats []models.Category) error {
	err := s.Store.CreateCategories(ctx, cats)
	for _, userID := range ownersOf(cats) {
		s.invalidate(userID)
	}
	return err
}

func (s *CachedStore) DeleteCategory(ctx context.Context, userID, id string) error {
	err := s.Store.DeleteCategory(ctx, userID, id)
	s.invalidate(userID)
	return err
}

func (s *CachedStore) invalidate(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[userID]++
	s.cache.Del(categoryCacheKey(userID))
	s.cache.Wait()
}

func (s *CachedStore) Close() error {
	s.cache.Close()
	return s.Store.Close()
}

func cloneCategories(cats []models.Category) []models.Category {
	out := make([]models.Category, len(cats))
	copy(out, cats)
	return out
}

func ownersOf(cats []models.Category) []string {
	seen := make(map[string]struct{})
	var owners []string
	for _, c := range cats {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		owners = append(owners, c.UserID)
	}
	return owners
}
