package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "validation_error", "field is required", gin.H{"field": "name"})
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "validation_error" || body.Error.Message != "field is required" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAttachmentHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/file", func(c *gin.Context) {
		Attachment(c, "resume.pdf", "application/pdf", []byte("%PDF-1.3"))
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/file", nil))

	if got := resp.Header().Get("Content-Disposition"); got != `attachment; filename="resume.pdf"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("unexpected content type %q", got)
	}
	if resp.Body.String() != "%PDF-1.3" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}
