package drafts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/layout"
	"resume-builder/resume/model"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc        *Service
	Predefined model.PredefinedData
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, predefined model.PredefinedData) *Handler {
	return &Handler{Svc: svc, Predefined: predefined}
}

// RegisterRoutes attaches draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/drafts", h.create)
	rg.GET("/drafts/:id", h.get)
	rg.PUT("/drafts/:id", h.replace)
	rg.PATCH("/drafts/:id/personal-info", h.updatePersonalInfo)
	rg.PATCH("/drafts/:id/fields", h.updateField)
	rg.DELETE("/drafts/:id", h.discard)
	rg.GET("/drafts/:id/outline", h.outline)
}

func (h *Handler) create(c *gin.Context) {
	draft, err := h.Svc.Create(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to create draft", nil)
		return
	}
	c.Set(middleware.DraftIDKey, draft.ID)
	respond.JSON(c, http.StatusCreated, toResponse(draft))
}

func (h *Handler) get(c *gin.Context) {
	draft, ok := h.load(c)
	if !ok {
		return
	}
	respond.OK(c, toResponse(draft))
}

func (h *Handler) replace(c *gin.Context) {
	id := draftID(c)
	var data model.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	draft, err := h.Svc.Replace(c.Request.Context(), id, data)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, toResponse(draft))
}

func (h *Handler) updatePersonalInfo(c *gin.Context) {
	id := draftID(c)
	var req personalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field must be one of name, location, phone, email, linkedin", nil)
		return
	}
	draft, err := h.Svc.UpdatePersonalInfo(c.Request.Context(), id, req.Field, req.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, toResponse(draft))
}

func (h *Handler) updateField(c *gin.Context) {
	id := draftID(c)
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field must be one of summaryPoints, technicalSkills, workExperience, projects", nil)
		return
	}
	draft, err := h.Svc.UpdateField(c.Request.Context(), id, req.Field, req.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, toResponse(draft))
}

func (h *Handler) discard(c *gin.Context) {
	if err := h.Svc.Discard(c.Request.Context(), draftID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) outline(c *gin.Context) {
	draft, ok := h.load(c)
	if !ok {
		return
	}
	respond.OK(c, toOutline(draft, layout.Build(draft.Data, h.Predefined)))
}

func (h *Handler) load(c *gin.Context) (Draft, bool) {
	draft, err := h.Svc.Get(c.Request.Context(), draftID(c))
	if err != nil {
		writeError(c, err)
		return Draft{}, false
	}
	return draft, true
}

func draftID(c *gin.Context) string {
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)
	return id
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
	case errors.Is(err, model.ErrUnknownField):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "draft operation failed", nil)
	}
}
