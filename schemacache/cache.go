// Package schemacache keeps the per-subcategory attribute schemas in memory.
// The cache is refreshed from the repository on an interval and read by every
// create request, so lookups take a read lock only.
package schemacache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"product-service/models"
)

// Source loads the full schema set. Implemented by the category repository.
type Source interface {
	ListSubcategorySchemas(ctx context.Context) ([]*models.SubcategorySchema, error)
}

type cacheKey struct {
	category    string
	subcategory string
	language    string
}

// Cache is a read-only schema lookup backed by a periodically refreshed map.
type Cache struct {
	source   Source
	interval time.Duration

	mu      sync.RWMutex
	schemas map[cacheKey]*models.SubcategorySchema
}

func New(source Source, interval time.Duration) *Cache {
	return &Cache{
		source:   source,
		interval: interval,
		schemas:  map[cacheKey]*models.SubcategorySchema{},
	}
}

// SubcategoryData returns the schema for a category/subcategory/language key,
// falling back to the subcategory's "en" schema when the requested language
// has none. Nil means no schema exists, which the caller treats as a
// validation failure.
func (c *Cache) SubcategoryData(category, subcategory, language string) *models.SubcategorySchema {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s, ok := c.schemas[cacheKey{category, subcategory, language}]; ok {
		return s
	}
	if language != "en" {
		if s, ok := c.schemas[cacheKey{category, subcategory, "en"}]; ok {
			return s
		}
	}
	return nil
}

// Refresh replaces the cached schema set with a fresh load from the source.
func (c *Cache) Refresh(ctx context.Context) error {
	schemas, err := c.source.ListSubcategorySchemas(ctx)
	if err != nil {
		return err
	}

	next := make(map[cacheKey]*models.SubcategorySchema, len(schemas))
	for _, s := range schemas {
		next[cacheKey{s.Category, s.Subcategory, s.Language}] = s
	}

	c.mu.Lock()
	c.schemas = next
	c.mu.Unlock()
	return nil
}

// Start refreshes once immediately, then on the configured interval until ctx
// is cancelled. Refresh failures keep the previous schema set.
func (c *Cache) Start(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		zap.L().Error("initial schema cache load failed", zap.Error(err))
	}

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.Refresh(ctx); err != nil {
					zap.L().Warn("schema cache refresh failed", zap.Error(err))
				}
			}
		}
	}()
}
