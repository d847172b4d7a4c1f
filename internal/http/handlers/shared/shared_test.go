package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/order-ledger/internal/adminsite"

	"github.com/gin-gonic/gin"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, 20},
		{3, 10, 3, 10},
		{-1, 500, 1, 100},
	}
	for _, tc := range cases {
		page, size := NormalizePagination(tc.page, tc.size)
		if page != tc.wantPage || size != tc.wantSize {
			t.Fatalf("NormalizePagination(%d,%d) = %d,%d", tc.page, tc.size, page, size)
		}
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/orders/12", nil)
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, ok := ParseIDParam(c, "id")
	if !ok || id != 12 {
		t.Fatalf("expected id 12, got %d ok=%v", id, ok)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	if _, ok := ParseIDParam(c, "id"); ok {
		t.Fatalf("expected invalid id")
	}
	if !strings.Contains(w.Body.String(), `"status_code":400`) {
		t.Fatalf("expected 400 envelope, got %s", w.Body.String())
	}
}

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&size=x", nil)
	if got := QueryInt(c, "page", 1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := QueryInt(c, "size", 20); got != 20 {
		t.Fatalf("expected fallback 20, got %d", got)
	}
	if got := QueryInt(c, "missing", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
}

func TestParseAdminListFilterKeepsRegisteredFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet,
		"/orders?q=alice&status=shipped&created_at=2024-01-02&bogus=1&ordering=-total_amount&page=2&page_size=5", nil)

	view := adminsite.NewDefaultRegistry().MustGet(adminsite.EntityOrder)
	filter := ParseAdminListFilter(c, view)

	if filter.Search != "alice" || filter.Ordering != "-total_amount" {
		t.Fatalf("unexpected search/ordering: %+v", filter)
	}
	if filter.Page != 2 || filter.PageSize != 5 {
		t.Fatalf("unexpected paging: %+v", filter)
	}
	if len(filter.Filters) != 2 || filter.Filters["status"] != "shipped" || filter.Filters["created_at"] != "2024-01-02" {
		t.Fatalf("unexpected filters: %+v", filter.Filters)
	}
	if _, ok := filter.Filters["bogus"]; ok {
		t.Fatalf("unregistered filter should be ignored")
	}

	pagination := BuildPagination(filter, 11)
	if pagination.TotalPage != 3 {
		t.Fatalf("expected 3 pages, got %d", pagination.TotalPage)
	}
}
