package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/order-ledger/internal/config"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"ok":true`) {
			t.Fatalf("expected handler response body, got %s", w.Body.String())
		}
	}
}

func TestNewRateLimitRule(t *testing.T) {
	rule := NewRateLimitRule("public", config.RateLimitConfig{WindowSeconds: 60, MaxRequests: 120, BlockSeconds: 30})
	if rule.Prefix != "public" || rule.WindowSeconds != 60 || rule.MaxRequests != 120 || rule.BlockSeconds != 30 {
		t.Fatalf("unexpected rule: %+v", rule)
	}
}

func TestIsRateLimited(t *testing.T) {
	cases := []struct {
		count int64
		max   int
		want  bool
	}{
		{1, 2, false},
		{2, 2, false},
		{3, 2, true},
		{-1, 2, true},
	}
	for _, tc := range cases {
		if got := isRateLimited(tc.count, tc.max); got != tc.want {
			t.Fatalf("isRateLimited(%d,%d) = %v, want %v", tc.count, tc.max, got, tc.want)
		}
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(5), want: 5, ok: true},
		{name: "int", input: 7, want: 7, ok: true},
		{name: "float64", input: float64(9), want: 9, ok: true},
		{name: "string", input: "3", want: 0, ok: false},
	}
	for _, tc := range cases {
		got, ok := toInt64(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s: got %d/%v want %d/%v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
