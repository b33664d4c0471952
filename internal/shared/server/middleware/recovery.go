package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
)

// Recovery turns a panic in a handler into a 500. The log line carries the
// draft and export identifiers handlers set, like request.complete does.
// When an attachment was already being written the body is left alone.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			telemetry.Error("http.panic", map[string]any{
				"request_id":    RequestIDFromContext(c),
				"method":        c.Request.Method,
				"route":         c.FullPath(),
				"path":          c.Request.URL.Path,
				"draft_id":      c.GetString(DraftIDKey),
				"export_id":     c.GetString(ExportIDKey),
				"export_format": c.GetString(ExportFormatKey),
				"written":       c.Writer.Written(),
				"panic":         rec,
				"stack":         string(debug.Stack()),
			})
			if c.Writer.Written() {
				c.Abort()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
