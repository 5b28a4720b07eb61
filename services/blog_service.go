package services

import (
	"context"

	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/logger"
	"github.com/EISEC/spb-remont/models"
	"github.com/EISEC/spb-remont/taxonomy"
	"github.com/EISEC/spb-remont/wpclient"
)

// staticSlugBatch caps the build-time slug enumeration at the upstream
// per_page ceiling.
const staticSlugBatch = 100

// BlogService is the façade over the WordPress adapter: it fetches raw
// posts, runs every result through the transformer and absorbs upstream
// failures into empty results so the frontend never needs error branches
// for blog data. Not-found stays a normal nil/empty value and is never
// logged as an error.
type BlogService struct {
	client *wpclient.Client
	cache  *taxonomy.Cache
}

func NewBlogService(client *wpclient.Client, cache *taxonomy.Cache) *BlogService {
	return &BlogService{client: client, cache: cache}
}

// Taxonomy exposes the shared cache for callers that resolve tags directly.
func (s *BlogService) Taxonomy() *taxonomy.Cache {
	return s.cache
}

func (s *BlogService) transformAll(ctx context.Context, posts []models.WordPressPost) []dto.BlogPost {
	out := make([]dto.BlogPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, TransformPost(ctx, p, s.cache))
	}
	return out
}

// GetPosts fetches one page of posts with the given parameters. On any
// upstream failure it logs the error and returns the documented empty
// envelope instead of propagating it.
func (s *BlogService) GetPosts(ctx context.Context, params dto.BlogSearchParams) dto.BlogAPIResponse {
	p := params.Normalized()

	page, err := s.client.Posts(ctx, wpclient.PostsQuery{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Search:     p.Search,
		Categories: p.Categories,
		Tags:       p.Tags,
		OrderBy:    p.OrderBy,
		Order:      p.Order,
	})
	if err != nil {
		logger.ErrorWithFields("failed to fetch posts", logger.Fields{
			"page":    p.Page,
			"perPage": p.PerPage,
			"search":  p.Search,
			"error":   err.Error(),
		})
		return dto.EmptyBlogAPIResponse()
	}

	return dto.BlogAPIResponse{
		Posts:       s.transformAll(ctx, page.Posts),
		TotalPages:  page.TotalPages,
		TotalPosts:  page.Total,
		CurrentPage: p.Page,
	}
}

// GetPostBySlug returns the post with the exact slug, or nil when it does
// not exist. Not-found is a normal outcome for the frontend to turn into a
// 404 page; only transport failures are logged.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) *dto.BlogPost {
	page, err := s.client.Posts(ctx, wpclient.PostsQuery{Slug: slug})
	if err != nil {
		logger.ErrorWithFields("failed to fetch post by slug", logger.Fields{
			"slug":  slug,
			"error": err.Error(),
		})
		return nil
	}
	if len(page.Posts) == 0 {
		return nil
	}

	post := TransformPost(ctx, page.Posts[0], s.cache)
	return &post
}

// GetPopularPosts returns the most recent posts. The name is historical:
// there is no popularity metric, recency stands in for it. When the
// upstream rejects the orderby parameter with a 400 the query is retried
// once without ordering, so a degraded list still renders.
func (s *BlogService) GetPopularPosts(ctx context.Context, limit int) []dto.BlogPost {
	if limit <= 0 {
		limit = 5
	}

	page, err := s.client.Posts(ctx, wpclient.PostsQuery{
		PerPage: limit,
		OrderBy: "date",
		Order:   "desc",
	})
	if err != nil && wpclient.IsBadRequest(err) {
		logger.WarnWithFields("orderby rejected, retrying without ordering", logger.Fields{
			"error": err.Error(),
		})
		page, err = s.client.Posts(ctx, wpclient.PostsQuery{PerPage: limit})
	}
	if err != nil {
		logger.ErrorWithFields("failed to fetch popular posts", logger.Fields{
			"limit": limit,
			"error": err.Error(),
		})
		return []dto.BlogPost{}
	}

	return s.transformAll(ctx, page.Posts)
}

// GetRelatedPosts returns up to limit posts sharing any of the given
// categories, excluding the post itself. An empty category list means no
// category filter, not an impossible match. Failure degrades to an empty
// slice; the page-level caller falls back to recent posts when even that
// comes back empty.
func (s *BlogService) GetRelatedPosts(ctx context.Context, postID int, categoryIDs []int, limit int) []dto.BlogPost {
	if limit <= 0 {
		limit = 3
	}

	page, err := s.client.Posts(ctx, wpclient.PostsQuery{
		Exclude:    postID,
		PerPage:    limit,
		OrderBy:    "date",
		Order:      "desc",
		Categories: categoryIDs,
	})
	if err != nil {
		logger.ErrorWithFields("failed to fetch related posts", logger.Fields{
			"postId": postID,
			"error":  err.Error(),
		})
		return []dto.BlogPost{}
	}

	return s.transformAll(ctx, page.Posts)
}

// GetRelatedOrRecent applies the page-level fallback on top of
// GetRelatedPosts: when no related posts come back, it substitutes the most
// recent posts with the current one filtered out.
func (s *BlogService) GetRelatedOrRecent(ctx context.Context, postID int, categoryIDs []int, limit int) []dto.BlogPost {
	if limit <= 0 {
		limit = 3
	}

	related := s.GetRelatedPosts(ctx, postID, categoryIDs, limit)
	if len(related) > 0 {
		return related
	}

	latest := s.GetPosts(ctx, dto.BlogSearchParams{PerPage: limit + 1})
	out := make([]dto.BlogPost, 0, limit)
	for _, p := range latest.Posts {
		if p.ID == postID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// GetCategories returns the memoized category list.
func (s *BlogService) GetCategories(ctx context.Context) []models.WordPressCategory {
	return s.cache.Categories(ctx)
}

// GetTags returns the memoized tag list.
func (s *BlogService) GetTags(ctx context.Context) []models.WordPressTag {
	return s.cache.Tags(ctx)
}

// GenerateStaticSlugs enumerates post slugs for build-time routing.
// Errors are swallowed into an empty list.
func (s *BlogService) GenerateStaticSlugs(ctx context.Context) []string {
	resp := s.GetPosts(ctx, dto.BlogSearchParams{PerPage: staticSlugBatch})
	slugs := make([]string, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}
