package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "generated when missing"},
		{name: "kept when well formed", inbound: "edge-7f3a.1_b", keep: true},
		{name: "replaced when too long", inbound: strings.Repeat("a", maxRequestIDLen+1)},
		{name: "replaced when it carries a newline", inbound: "abc\ninjected"},
		{name: "replaced when it carries quotes", inbound: `abc"def`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			router := gin.New()
			router.Use(RequestID())
			router.GET("/", func(c *gin.Context) {
				seen = RequestIDFromContext(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header[requestIDHeader] = []string{tt.inbound}
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			got := resp.Header().Get(requestIDHeader)
			if got != seen {
				t.Fatalf("header %q differs from context %q", got, seen)
			}
			if tt.keep {
				if got != tt.inbound {
					t.Fatalf("expected inbound id %q, got %q", tt.inbound, got)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected generated uuid, got %q", got)
			}
		})
	}
}
