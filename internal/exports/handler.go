package exports

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/drafts"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
)

// DraftReader yields draft snapshots to export.
type DraftReader interface {
	Get(ctx context.Context, id string) (drafts.Draft, error)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc    *Service
	Drafts DraftReader
	// OperatorToken enables the record listing and archived file routes.
	// Those routes span every draft, so they are not mounted without it.
	OperatorToken string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, draftReader DraftReader, operatorToken string) *Handler {
	return &Handler{Svc: svc, Drafts: draftReader, OperatorToken: strings.TrimSpace(operatorToken)}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drafts/:id/export/:format", h.exportDraft)
	rg.POST("/export/:format", h.exportBody)

	if h.OperatorToken == "" {
		return
	}
	ops := rg.Group("/exports", middleware.OperatorAuth(h.OperatorToken))
	ops.GET("", h.list)
	ops.GET("/:exportId/file", h.file)
}

func (h *Handler) exportDraft(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	draft, err := h.Drafts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, drafts.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load draft", nil)
		return
	}
	h.render(c, draft.ID, draft.Data, format)
}

func (h *Handler) exportBody(c *gin.Context) {
	format, ok := parseFormat(c)
	if !ok {
		return
	}
	var data model.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.render(c, "", data, format)
}

func (h *Handler) render(c *gin.Context, draftID string, data model.ResumeData, format string) {
	result, err := h.Svc.Render(c.Request.Context(), draftID, data, format)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to generate "+format, nil)
		return
	}
	c.Set(middleware.ExportIDKey, result.Export.ID)
	c.Header("X-Export-Id", result.Export.ID)
	c.Header("X-Content-Digest", result.Export.Digest)
	respond.Attachment(c, result.Export.FileName, result.Export.ContentType, result.Data)
}

func (h *Handler) list(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a non-negative integer", nil)
			return
		}
		limit = parsed
	}

	records, err := h.Svc.List(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list exports", nil)
		return
	}
	items := make([]ExportResponse, 0, len(records))
	for _, record := range records {
		items = append(items, toResponse(record))
	}
	respond.OK(c, gin.H{"items": items})
}

func (h *Handler) file(c *gin.Context) {
	id := c.Param("exportId")
	c.Set(middleware.ExportIDKey, id)

	export, body, err := h.Svc.Open(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "export not found", nil)
		case errors.Is(err, ErrNotArchived):
			respond.Error(c, http.StatusNotFound, "not_archived", "export file was not archived", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to open export", nil)
		}
		return
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to read export", nil)
		return
	}
	c.Set(middleware.ExportFormatKey, export.Format)
	respond.Attachment(c, export.FileName, export.ContentType, data)
}

func parseFormat(c *gin.Context) (string, bool) {
	format, err := ParseFormat(c.Param("format"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unsupported_format", "format must be pdf or docx", nil)
		return "", false
	}
	c.Set(middleware.ExportFormatKey, format)
	return format, true
}
