package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// OperatorAuth guards routes that expose data across drafts. Requests must
// carry "Authorization: Bearer <token>". An empty token rejects everything.
func OperatorAuth(token string) gin.HandlerFunc {
	want := []byte(strings.TrimSpace(token))
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		got, ok := strings.CutPrefix(header, "Bearer ")
		got = strings.TrimSpace(got)
		if !ok || got == "" || len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid operator token", nil)
			return
		}
		c.Next()
	}
}
