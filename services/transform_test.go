package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/models"
	"github.com/EISEC/spb-remont/services"
	"github.com/EISEC/spb-remont/taxonomy"
)

type staticTaxonomy struct {
	tags []models.WordPressTag
}

func (s staticTaxonomy) Categories(ctx context.Context) ([]models.WordPressCategory, error) {
	return nil, nil
}

func (s staticTaxonomy) Tags(ctx context.Context) ([]models.WordPressTag, error) {
	return s.tags, nil
}

func newTagCache(tags ...models.WordPressTag) *taxonomy.Cache {
	return taxonomy.New(staticTaxonomy{tags: tags})
}

func basePost() models.WordPressPost {
	return models.WordPressPost{
		ID:       42,
		Slug:     "remont-vannoy",
		Title:    models.RenderedField{Rendered: "Ремонт &laquo;под ключ&raquo;"},
		Excerpt:  models.RenderedField{Rendered: "<p>Коротко о главном [&hellip;]</p>"},
		Content:  models.RenderedField{Rendered: "<p>Подробный текст статьи</p>"},
		Date:     "2025-03-01T10:00:00",
		Modified: "2025-03-02T11:00:00",
	}
}

func TestTransformPostFallbacks(t *testing.T) {
	post := TransformForTest(t, basePost(), newTagCache())

	// no featured media, no embeds: every fallback kicks in
	assert.Equal(t, services.PlaceholderImage, post.Image)
	assert.Equal(t, services.DefaultAuthor, post.Author)
	assert.Equal(t, services.CategoryLabel, post.Category)
	assert.False(t, post.Featured)
	assert.NotNil(t, post.Tags)
	assert.Empty(t, post.Tags)
}

func TestTransformPostTextCleanup(t *testing.T) {
	post := TransformForTest(t, basePost(), newTagCache())

	assert.Equal(t, "Ремонт «под ключ»", post.Title)
	assert.Equal(t, "Коротко о главном ...", post.Excerpt)
	assert.Equal(t, "<p>Подробный текст статьи</p>", post.Content)
	assert.Equal(t, "1 мин", post.ReadTime)
	assert.Equal(t, 42, post.ID)
	assert.Equal(t, "remont-vannoy", post.Slug)
	assert.Equal(t, "2025-03-01T10:00:00", post.Date)
	assert.Equal(t, "2025-03-02T11:00:00", post.Modified)
}

func TestTransformPostEmbeds(t *testing.T) {
	wp := basePost()
	wp.FeaturedMedia = 100
	wp.Embedded = &models.EmbeddedData{
		FeaturedMedia: []models.EmbeddedMedia{{SourceURL: "https://cdn.example/img.jpg"}},
		Author:        []models.EmbeddedAuthor{{Name: "Мастер"}},
	}

	post := TransformForTest(t, wp, newTagCache())
	assert.Equal(t, "https://cdn.example/img.jpg", post.Image)
	assert.Equal(t, "Мастер", post.Author)
	assert.True(t, post.Featured)
}

func TestTransformPostEmptyEmbedEntries(t *testing.T) {
	wp := basePost()
	wp.FeaturedMedia = 100
	wp.Embedded = &models.EmbeddedData{
		FeaturedMedia: []models.EmbeddedMedia{{SourceURL: ""}},
		Author:        []models.EmbeddedAuthor{{Name: ""}},
	}

	post := TransformForTest(t, wp, newTagCache())
	assert.Equal(t, services.PlaceholderImage, post.Image)
	assert.Equal(t, services.DefaultAuthor, post.Author)
	// featured reflects the media id, not the embed
	assert.True(t, post.Featured)
}

func TestTransformPostTags(t *testing.T) {
	tags := make([]models.WordPressTag, 0, 15)
	ids := make([]int, 0, 15)
	for i := 1; i <= 15; i++ {
		tags = append(tags, models.WordPressTag{ID: i, Name: string(rune('а' + i - 1))})
		ids = append(ids, i)
	}

	wp := basePost()
	wp.Tags = ids
	post := TransformForTest(t, wp, newTagCache(tags...))

	// capped at ten, upstream order preserved
	assert.Len(t, post.Tags, 10)
	assert.Equal(t, "а", post.Tags[0])
}

// TransformForTest keeps the call sites short.
func TransformForTest(t *testing.T, wp models.WordPressPost, cache *taxonomy.Cache) dto.BlogPost {
	t.Helper()
	return services.TransformPost(context.Background(), wp, cache)
}
