package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EISEC/spb-remont/cmd/api/handlers"
	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/services"
	"github.com/EISEC/spb-remont/taxonomy"
	"github.com/EISEC/spb-remont/wpclient"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newBlogService(t *testing.T, upstream http.HandlerFunc) *services.BlogService {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	client := wpclient.NewWithHTTPClient(srv.Client(), srv.URL)
	return services.NewBlogService(client, taxonomy.New(client))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponseDTO {
	t.Helper()
	var body dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetPostBySlugNotFoundBody(t *testing.T) {
	svc := newBlogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	r := gin.New()
	r.GET("/blog/posts/:slug", handlers.GetPostBySlugHandler(svc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blog/posts/nonexistent", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec).Error)
}

func TestRelatedPostsMissingPostIDBody(t *testing.T) {
	svc := newBlogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	r := gin.New()
	r.GET("/blog/related", handlers.RelatedPostsHandler(svc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blog/related", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "post_id is required", decodeError(t, rec).Error)
}

func TestCreateLeadErrorBodies(t *testing.T) {
	r := gin.New()
	r.POST("/leads", handlers.CreateLeadHandler(services.NewLeadService(nil)))

	// malformed payload
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "некорректный запрос", decodeError(t, rec).Error)

	// validation failure carries the rule's message
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/leads",
		strings.NewReader(`{"name":"Анна","phone":"12345"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, services.ErrLeadPhone.Error(), decodeError(t, rec).Error)
}
