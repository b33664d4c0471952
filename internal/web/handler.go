package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/drafts"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/layout"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

const htmlContentType = "text/html; charset=utf-8"

// DraftStore is the part of the draft service the page needs.
type DraftStore interface {
	Create(ctx context.Context) (drafts.Draft, error)
	Get(ctx context.Context, id string) (drafts.Draft, error)
}

// Handler serves the form page and preview fragments.
type Handler struct {
	Drafts     DraftStore
	Predefined model.PredefinedData
	APIBase    string
}

// NewHandler constructs a Handler. apiBase is the prefix the page's script calls.
func NewHandler(store DraftStore, predefined model.PredefinedData, apiBase string) *Handler {
	return &Handler{Drafts: store, Predefined: predefined, APIBase: apiBase}
}

// RegisterPage attaches GET / to the engine.
func (h *Handler) RegisterPage(r gin.IRoutes) {
	r.GET("/", h.page)
}

// RegisterRoutes attaches the preview fragment to the API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drafts/:id/preview", h.preview)
}

func (h *Handler) page(c *gin.Context) {
	draft, err := h.Drafts.Create(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to start draft", nil)
		return
	}
	c.Set(middleware.DraftIDKey, draft.ID)

	preview, err := render.Preview(layout.Build(draft.Data, h.Predefined))
	if err != nil {
		h.previewFailed(c, draft.ID, err)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(draft.ID, h.APIBase, draft.Data, preview)); err != nil {
		telemetry.Error("web.page_failed", map[string]any{"draft_id": draft.ID, "err": err})
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to render page", nil)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (h *Handler) preview(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)

	draft, err := h.Drafts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, drafts.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load draft", nil)
		return
	}

	fragment, err := render.Preview(layout.Build(draft.Data, h.Predefined))
	if err != nil {
		h.previewFailed(c, draft.ID, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, htmlContentType, []byte(fragment))
}

func (h *Handler) previewFailed(c *gin.Context, draftID string, err error) {
	telemetry.Error("web.preview_failed", map[string]any{"draft_id": draftID, "err": err})
	respond.Error(c, http.StatusInternalServerError, "internal", "failed to render preview", nil)
}
