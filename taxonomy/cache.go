package taxonomy

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/EISEC/spb-remont/logger"
	"github.com/EISEC/spb-remont/models"
)

const (
	keyCategories = "taxonomy:categories"
	keyTags       = "taxonomy:tags"
)

// Source supplies the raw taxonomy lists. *wpclient.Client satisfies it.
type Source interface {
	Categories(ctx context.Context) ([]models.WordPressCategory, error)
	Tags(ctx context.Context) ([]models.WordPressTag, error)
}

// Cache memoizes the category and tag lookups for the process lifetime.
// Each list is fetched from the upstream once and never refreshed; the
// staleness is an accepted trade-off. A failed fetch is not cached, so the
// next caller retries. Unlike the module-level globals this replaced, the
// cache has an explicit lifetime and is handed to the transformer by
// reference, which keeps tests isolated.
type Cache struct {
	source Source
	store  *gocache.Cache

	mu sync.Mutex // serializes the populate path
}

// New builds an empty cache over the given source.
func New(source Source) *Cache {
	return &Cache{
		source: source,
		store:  gocache.New(gocache.NoExpiration, 0),
	}
}

// Categories returns the cached category list, fetching it on first use.
// Fetch failure is absorbed into an empty list and logged.
func (c *Cache) Categories(ctx context.Context) []models.WordPressCategory {
	if v, ok := c.store.Get(keyCategories); ok {
		return v.([]models.WordPressCategory)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.store.Get(keyCategories); ok {
		return v.([]models.WordPressCategory)
	}

	categories, err := c.source.Categories(ctx)
	if err != nil {
		logger.ErrorWithFields("failed to fetch categories", logger.Fields{"error": err.Error()})
		return []models.WordPressCategory{}
	}
	if len(categories) > 0 {
		c.store.Set(keyCategories, categories, gocache.NoExpiration)
	}
	return categories
}

// Tags returns the cached tag list, fetching it on first use.
// Fetch failure is absorbed into an empty list and logged.
func (c *Cache) Tags(ctx context.Context) []models.WordPressTag {
	if v, ok := c.store.Get(keyTags); ok {
		return v.([]models.WordPressTag)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.store.Get(keyTags); ok {
		return v.([]models.WordPressTag)
	}

	tags, err := c.source.Tags(ctx)
	if err != nil {
		logger.ErrorWithFields("failed to fetch tags", logger.Fields{"error": err.Error()})
		return []models.WordPressTag{}
	}
	if len(tags) > 0 {
		c.store.Set(keyTags, tags, gocache.NoExpiration)
	}
	return tags
}

// TagNames resolves numeric tag IDs to display names, preserving the
// upstream list order. Unknown IDs are skipped.
func (c *Cache) TagNames(ctx context.Context, ids []int) []string {
	if len(ids) == 0 {
		return []string{}
	}

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	names := []string{}
	for _, tag := range c.Tags(ctx) {
		if wanted[tag.ID] {
			names = append(names, tag.Name)
		}
	}
	return names
}
