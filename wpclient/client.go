package wpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/EISEC/spb-remont/httpclient"
	"github.com/EISEC/spb-remont/models"
)

// Client is a thin client for the WordPress REST API (wp/v2).
//
// It knows nothing about view models or fallback policy; it issues GETs,
// decodes JSON and surfaces pagination headers. services.BlogService owns
// the degradation rules on top of it.
type Client struct {
	base *httpclient.BaseClient
}

// New builds a Client for the given base URL, e.g.
// https://spbremontotdelka.ru/wp-json/wp/v2
func New(baseURL string) *Client {
	return &Client{base: httpclient.NewBaseClient(baseURL)}
}

// NewWithHTTPClient is used by tests to plug in an httptest-backed client.
func NewWithHTTPClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, baseURL)}
}

// StatusError reports a non-2xx upstream response. The service layer checks
// the code to drive the orderby fallback on 400.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wordpress api: status=%d body=%s", e.Code, e.Body)
}

// IsBadRequest reports whether err is an upstream 400 rejection.
func IsBadRequest(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusBadRequest
}

// PostsQuery mirrors the query parameters of GET /posts.
// Zero values are omitted from the request so the upstream defaults apply.
type PostsQuery struct {
	Page       int
	PerPage    int
	Search     string
	Categories []int
	Tags       []int
	OrderBy    string
	Order      string
	Exclude    int
	Slug       string
}

// PostsPage is one page of raw posts plus the header-supplied totals.
type PostsPage struct {
	Posts      []models.WordPressPost
	Total      int
	TotalPages int
}

func joinIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}

func (q PostsQuery) values() url.Values {
	v := url.Values{}
	v.Set("_embed", "true")
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if len(q.Categories) > 0 {
		v.Set("categories", joinIDs(q.Categories))
	}
	if len(q.Tags) > 0 {
		v.Set("tags", joinIDs(q.Tags))
	}
	if q.OrderBy != "" {
		v.Set("orderby", q.OrderBy)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Exclude > 0 {
		v.Set("exclude", strconv.Itoa(q.Exclude))
	}
	if q.Slug != "" {
		v.Set("slug", q.Slug)
	}
	return v
}

// Posts fetches one page of posts. Pagination totals come from the
// X-WP-Total and X-WP-TotalPages response headers.
func (c *Client) Posts(ctx context.Context, query PostsQuery) (PostsPage, error) {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/posts", query.values())
	if err != nil {
		return PostsPage{}, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return PostsPage{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return PostsPage{}, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var posts []models.WordPressPost
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return PostsPage{}, fmt.Errorf("wordpress api: decode posts: %w", err)
	}

	total, _ := strconv.Atoi(resp.Header.Get("X-WP-Total"))
	totalPages, _ := strconv.Atoi(resp.Header.Get("X-WP-TotalPages"))

	return PostsPage{Posts: posts, Total: total, TotalPages: totalPages}, nil
}

// Categories fetches the category taxonomy (first 100 entries, matching the
// upstream per_page ceiling).
func (c *Client) Categories(ctx context.Context) ([]models.WordPressCategory, error) {
	v := url.Values{}
	v.Set("per_page", "100")
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/categories", v)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var categories []models.WordPressCategory
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return nil, fmt.Errorf("wordpress api: decode categories: %w", err)
	}
	return categories, nil
}

// Tags fetches the tag taxonomy (first 100 entries).
func (c *Client) Tags(ctx context.Context) ([]models.WordPressTag, error) {
	v := url.Values{}
	v.Set("per_page", "100")
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/tags", v)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var tags []models.WordPressTag
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("wordpress api: decode tags: %w", err)
	}
	return tags, nil
}

// Health issues a minimal request to verify the upstream answers at all.
func (c *Client) Health(ctx context.Context) error {
	v := url.Values{}
	v.Set("per_page", "1")
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/posts", v)
	if err != nil {
		return err
	}
	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
