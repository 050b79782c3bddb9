package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/internal/domain/providers"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
)

// CachedCatalogAdapter wraps SupplementAdapter with caching. The catalog
// changes only on reseed, so TTLs are generous.
type CachedCatalogAdapter struct {
	adapter repositories.SupplementRepository
	cache   providers.CacheProvider
}

// NewCachedCatalogAdapter creates a new cached catalog adapter
func NewCachedCatalogAdapter(adapter repositories.SupplementRepository, cache providers.CacheProvider) repositories.SupplementRepository {
	return &CachedCatalogAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	supplementByIDTTL = 600 // 10 minutes for single entries
	catalogListTTL    = 300 // 5 minutes for the full catalog
)

// Cache key generators
func supplementCacheKey(id string) string {
	return fmt.Sprintf("supplement:%s", id)
}

func catalogListCacheKey() string {
	return "supplements:list"
}

// GetByID retrieves a catalog entry by id with caching
func (a *CachedCatalogAdapter) GetByID(ctx context.Context, id string) (*entities.Supplement, error) {
	cacheKey := supplementCacheKey(id)

	// Try to get from cache first
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var supplement entities.Supplement
		if err := json.Unmarshal(cached, &supplement); err == nil {
			return &supplement, nil
		}
		// If unmarshal fails, continue to fetch from DB
		log.Printf("Failed to unmarshal cached supplement %s: %v", id, err)
	}

	// Cache miss - fetch from database
	supplement, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(supplement); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, supplementByIDTTL); err != nil {
				log.Printf("Failed to cache supplement %s: %v", id, err)
			}
		}
	}()

	return supplement, nil
}

// GetByIDs retrieves multiple catalog entries, serving what it can from
// cache and fetching the rest in one query
func (a *CachedCatalogAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Supplement, error) {
	if len(ids) == 0 {
		return []*entities.Supplement{}, nil
	}

	var cachedSupplements []*entities.Supplement
	missingIDs := make([]string, 0)

	for _, id := range ids {
		data, err := a.cache.Get(ctx, supplementCacheKey(id))
		if err == nil {
			var supplement entities.Supplement
			if err := json.Unmarshal(data, &supplement); err == nil {
				cachedSupplements = append(cachedSupplements, &supplement)
				continue
			}
		}
		missingIDs = append(missingIDs, id)
	}

	// If all were cached, return them
	if len(missingIDs) == 0 {
		return cachedSupplements, nil
	}

	// Fetch missing entries from database
	dbSupplements, err := a.adapter.GetByIDs(ctx, missingIDs)
	if err != nil {
		return nil, err
	}

	// Cache the missing entries asynchronously
	go func() {
		bgCtx := context.Background()
		for _, supplement := range dbSupplements {
			if data, err := json.Marshal(supplement); err == nil {
				if err := a.cache.Set(bgCtx, supplementCacheKey(supplement.ID), data, supplementByIDTTL); err != nil {
					log.Printf("Failed to cache supplement %s: %v", supplement.ID, err)
				}
			}
		}
	}()

	return append(cachedSupplements, dbSupplements...), nil
}

// List retrieves the full active catalog with caching
func (a *CachedCatalogAdapter) List(ctx context.Context) ([]*entities.Supplement, error) {
	cacheKey := catalogListCacheKey()

	// Try to get from cache first
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var supplements []*entities.Supplement
		if err := json.Unmarshal(cached, &supplements); err == nil {
			return supplements, nil
		}
		log.Printf("Failed to unmarshal cached catalog list: %v", err)
	}

	// Cache miss - fetch from database
	supplements, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(supplements); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, catalogListTTL); err != nil {
				log.Printf("Failed to cache catalog list: %v", err)
			}
		}
	}()

	return supplements, nil
}
