package services

import (
	"context"

	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/models"
	"github.com/EISEC/spb-remont/parser"
	"github.com/EISEC/spb-remont/taxonomy"
)

const (
	// PlaceholderImage is served when a post has no resolvable featured image.
	PlaceholderImage = "/images/blog-placeholder.svg"

	// DefaultAuthor is the brand name shown when the author embed is missing.
	DefaultAuthor = "АМСТРОЙ"

	// CategoryLabel collapses all posts into a single rubric. Real upstream
	// categories are intentionally discarded; see DESIGN.md before changing.
	CategoryLabel = "Блог"

	maxPostTags = 10
)

// TransformPost maps a raw upstream post into the BlogPost view model.
// Every fallback is total, so no field is ever left empty-handed. Given the
// same post and cache contents the result is deterministic; the upstream
// value is not mutated.
func TransformPost(ctx context.Context, wpPost models.WordPressPost, cache *taxonomy.Cache) dto.BlogPost {
	tags := cache.TagNames(ctx, wpPost.Tags)
	if len(tags) > maxPostTags {
		tags = tags[:maxPostTags]
	}

	return dto.BlogPost{
		ID:       wpPost.ID,
		Slug:     wpPost.Slug,
		Title:    parser.StripHTML(wpPost.Title.Rendered),
		Excerpt:  parser.StripHTML(wpPost.Excerpt.Rendered),
		Content:  parser.CleanHTMLContent(wpPost.Content.Rendered),
		Image:    postImage(wpPost),
		Author:   postAuthor(wpPost),
		Date:     wpPost.Date,
		Modified: wpPost.Modified,
		Category: CategoryLabel,
		ReadTime: parser.CalculateReadTime(wpPost.Content.Rendered),
		Tags:     tags,
		Featured: wpPost.FeaturedMedia > 0,
	}
}

// postImage walks the featured-media embed: first entry's source URL, else
// the local placeholder.
func postImage(wpPost models.WordPressPost) string {
	if wpPost.Embedded != nil && len(wpPost.Embedded.FeaturedMedia) > 0 {
		if url := wpPost.Embedded.FeaturedMedia[0].SourceURL; url != "" {
			return url
		}
	}
	return PlaceholderImage
}

// postAuthor resolves the embedded author name, else the brand name.
func postAuthor(wpPost models.WordPressPost) string {
	if wpPost.Embedded != nil && len(wpPost.Embedded.Author) > 0 {
		if name := wpPost.Embedded.Author[0].Name; name != "" {
			return name
		}
	}
	return DefaultAuthor
}
