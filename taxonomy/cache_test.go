package taxonomy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EISEC/spb-remont/models"
	"github.com/EISEC/spb-remont/taxonomy"
)

type fakeSource struct {
	categories    []models.WordPressCategory
	tags          []models.WordPressTag
	err           error
	categoryCalls int
	tagCalls      int
}

func (f *fakeSource) Categories(ctx context.Context) ([]models.WordPressCategory, error) {
	f.categoryCalls++
	return f.categories, f.err
}

func (f *fakeSource) Tags(ctx context.Context) ([]models.WordPressTag, error) {
	f.tagCalls++
	return f.tags, f.err
}

func TestCacheFetchesOnce(t *testing.T) {
	src := &fakeSource{
		categories: []models.WordPressCategory{{ID: 1, Name: "Ремонт"}},
		tags:       []models.WordPressTag{{ID: 10, Name: "кухня"}},
	}
	cache := taxonomy.New(src)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.Len(t, cache.Categories(ctx), 1)
		assert.Len(t, cache.Tags(ctx), 1)
	}
	assert.Equal(t, 1, src.categoryCalls)
	assert.Equal(t, 1, src.tagCalls)
}

func TestCacheFailureIsNotCached(t *testing.T) {
	src := &fakeSource{err: errors.New("upstream down")}
	cache := taxonomy.New(src)
	ctx := context.Background()

	assert.Empty(t, cache.Tags(ctx))
	assert.Empty(t, cache.Tags(ctx))
	// failed fetches are retried, not memoized
	assert.Equal(t, 2, src.tagCalls)

	src.err = nil
	src.tags = []models.WordPressTag{{ID: 1, Name: "ванная"}}
	assert.Len(t, cache.Tags(ctx), 1)
	assert.Len(t, cache.Tags(ctx), 1)
	assert.Equal(t, 3, src.tagCalls)
}

func TestTagNames(t *testing.T) {
	src := &fakeSource{
		tags: []models.WordPressTag{
			{ID: 1, Name: "кухня"},
			{ID: 2, Name: "ванная"},
			{ID: 3, Name: "спальня"},
		},
	}
	cache := taxonomy.New(src)
	ctx := context.Background()

	// upstream list order wins, unknown IDs are skipped
	assert.Equal(t, []string{"кухня", "спальня"}, cache.TagNames(ctx, []int{3, 99, 1}))
	assert.Equal(t, []string{}, cache.TagNames(ctx, nil))
	assert.Equal(t, 1, src.tagCalls)
}
