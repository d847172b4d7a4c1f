package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

type stubCatalog struct {
	categories []models.Category
	err        error
	calls      int
}

func (s *stubCatalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.calls++
	return s.categories, s.err
}

func serveCatalog(t *testing.T, h *Handler, method, path string) response.Response {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/hello", h.ListCategories)
	r.GET("/api/hi", h.ListCategories)
	r.POST("/api/hello", h.ListCategories)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestListCategoriesReturnsEveryCategoryOnAllRoutes(t *testing.T) {
	catalog := &stubCatalog{categories: []models.Category{
		{ID: 1, Name: "Shoes", Slug: "shoes"},
		{ID: 2, Name: "Hats", Slug: "hats"},
	}}
	h := NewWithCatalog(catalog)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/hello"},
		{http.MethodGet, "/api/hi"},
		{http.MethodPost, "/api/hello"},
	} {
		body := serveCatalog(t, h, tc.method, tc.path)
		if body.StatusCode != response.CodeOK {
			t.Fatalf("%s %s: unexpected status %d", tc.method, tc.path, body.StatusCode)
		}
		rows, ok := body.Data.([]interface{})
		if !ok || len(rows) != 2 {
			t.Fatalf("%s %s: expected 2 categories, got %+v", tc.method, tc.path, body.Data)
		}
	}
	if catalog.calls != 3 {
		t.Fatalf("expected 3 catalog reads, got %d", catalog.calls)
	}
}

func TestListCategoriesEmptyIsArray(t *testing.T) {
	h := NewWithCatalog(&stubCatalog{})
	body := serveCatalog(t, h, http.MethodGet, "/api/hi")
	rows, ok := body.Data.([]interface{})
	if !ok || len(rows) != 0 {
		t.Fatalf("expected empty array, got %#v", body.Data)
	}
}

func TestListCategoriesFailure(t *testing.T) {
	h := NewWithCatalog(&stubCatalog{err: errors.New("db down")})
	body := serveCatalog(t, h, http.MethodGet, "/api/hello")
	if body.StatusCode != response.CodeInternal {
		t.Fatalf("expected 500 envelope, got %d", body.StatusCode)
	}
}
