package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/services"
)

// parseIDList reads a comma-separated list of numeric IDs, silently
// skipping anything that does not parse.
func parseIDList(raw string) []int {
	if raw == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// ListPostsHandler godoc
// @Summary      List blog posts
// @Description  One page of transformed posts; degrades to an empty envelope on upstream failure
// @Tags         blog
// @Param        page        query  int     false  "Page number (1-based)"
// @Param        per_page    query  int     false  "Page size"
// @Param        search      query  string  false  "Free-text search"
// @Param        categories  query  string  false  "Category IDs, comma-separated"
// @Param        tags        query  string  false  "Tag IDs, comma-separated"
// @Param        orderby     query  string  false  "Sort field"
// @Param        order       query  string  false  "asc or desc"
// @Produce      json
// @Success      200  {object}  dto.BlogAPIResponse
// @Router       /blog/posts [get]
func ListPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params dto.BlogSearchParams
		params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		params.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))
		params.Search = c.Query("search")
		params.Categories = parseIDList(c.Query("categories"))
		params.Tags = parseIDList(c.Query("tags"))
		params.OrderBy = c.Query("orderby")
		params.Order = c.Query("order")

		c.JSON(http.StatusOK, svc.GetPosts(c.Request.Context(), params))
	}
}

// GetPostBySlugHandler godoc
// @Summary      Get post by slug
// @Tags         blog
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.BlogPost
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/posts/{slug} [get]
func GetPostBySlugHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		post := svc.GetPostBySlug(c.Request.Context(), slug)
		if post == nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// PopularPostsHandler godoc
// @Summary      Recent posts for the "popular" rail
// @Tags         blog
// @Param        limit  query  int  false  "Max posts (default 5)"
// @Produce      json
// @Success      200  {array}  dto.BlogPost
// @Router       /blog/popular [get]
func PopularPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
		c.JSON(http.StatusOK, svc.GetPopularPosts(c.Request.Context(), limit))
	}
}

// RelatedPostsHandler godoc
// @Summary      Related posts for an article page
// @Description  Falls back to the most recent posts (current one excluded) when nothing related is found
// @Tags         blog
// @Param        post_id     query  int     true   "Post to exclude"
// @Param        categories  query  string  false  "Category IDs, comma-separated"
// @Param        limit       query  int     false  "Max posts (default 3)"
// @Produce      json
// @Success      200  {array}   dto.BlogPost
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /blog/related [get]
func RelatedPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := strconv.Atoi(c.Query("post_id"))
		if err != nil || postID <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "post_id is required"})
			return
		}
		categories := parseIDList(c.Query("categories"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

		c.JSON(http.StatusOK, svc.GetRelatedOrRecent(c.Request.Context(), postID, categories, limit))
	}
}

// SuggestHandler godoc
// @Summary      Search suggestions for the blog search box
// @Description  Queries shorter than two characters return an empty list; debouncing happens client-side
// @Tags         blog
// @Param        q      query  string  true   "Search text"
// @Param        limit  query  int     false  "Max suggestions (default 5)"
// @Produce      json
// @Success      200  {array}  dto.BlogPost
// @Router       /blog/suggest [get]
func SuggestHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if utf8.RuneCountInString(q) < 2 {
			c.JSON(http.StatusOK, []dto.BlogPost{})
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
		resp := svc.GetPosts(c.Request.Context(), dto.BlogSearchParams{Search: q, PerPage: limit})
		c.JSON(http.StatusOK, resp.Posts)
	}
}

// SlugsHandler godoc
// @Summary      All post slugs for static route generation
// @Tags         blog
// @Produce      json
// @Success      200  {array}  string
// @Router       /blog/slugs [get]
func SlugsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.GenerateStaticSlugs(c.Request.Context()))
	}
}

// CategoriesHandler godoc
// @Summary      Category taxonomy
// @Tags         blog
// @Produce      json
// @Success      200  {array}  dto.CategoryDTO
// @Router       /blog/categories [get]
func CategoriesHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := svc.GetCategories(c.Request.Context())
		out := make([]dto.CategoryDTO, 0, len(categories))
		for _, cat := range categories {
			out = append(out, dto.CategoryDTO{ID: cat.ID, Name: cat.Name, Slug: cat.Slug})
		}
		c.JSON(http.StatusOK, out)
	}
}

// TagsHandler godoc
// @Summary      Tag taxonomy
// @Tags         blog
// @Produce      json
// @Success      200  {array}  dto.TagDTO
// @Router       /blog/tags [get]
func TagsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags := svc.GetTags(c.Request.Context())
		out := make([]dto.TagDTO, 0, len(tags))
		for _, tag := range tags {
			out = append(out, dto.TagDTO{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
		}
		c.JSON(http.StatusOK, out)
	}
}
