package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/service"
)

// TemplateServiceInterface defines the template service methods
type TemplateServiceInterface interface {
	Variants(ctx context.Context) domain.EmailTemplates
	GetVariant(ctx context.Context, id string) (*domain.EmailTemplateVariant, error)
	Activate(ctx context.Context, id string) error
	UpdateContent(ctx context.Context, id, content string) error
	Preview(ctx context.Context) string
	PreviewText(ctx context.Context) (string, error)
}

// TemplateHandler handles email template requests
type TemplateHandler struct {
	templates TemplateServiceInterface
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(templates TemplateServiceInterface) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// List handles GET /api/v1/templates
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates := h.templates.Variants(r.Context())

	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"data":           templates.Variants,
		"active_variant": templates.ActiveVariantID,
	})
}

// GetVariant handles GET /api/v1/templates/{id}
func (h *TemplateHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	variant, err := h.templates.GetVariant(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			RenderError(w, http.StatusNotFound, "Template variant not found")
			return
		}
		RenderError(w, http.StatusInternalServerError, "Failed to get template variant")
		return
	}

	RenderJSON(w, http.StatusOK, variant)
}

// Activate handles POST /api/v1/templates/{id}/activate
func (h *TemplateHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.templates.Activate(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			RenderError(w, http.StatusNotFound, "Template variant not found")
			return
		}
		RenderError(w, http.StatusInternalServerError, "Failed to activate template variant")
		return
	}

	RenderJSON(w, http.StatusOK, map[string]string{"active_variant": id})
}

// UpdateContent handles PUT /api/v1/templates/{id}
func (h *TemplateHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := r.PathValue("id")

	if err := h.templates.UpdateContent(r.Context(), id, req.Content); err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			RenderError(w, http.StatusNotFound, "Template variant not found")
			return
		}
		RenderError(w, http.StatusInternalServerError, "Failed to update template")
		return
	}

	variant, err := h.templates.GetVariant(r.Context(), id)
	if err != nil {
		RenderError(w, http.StatusInternalServerError, "Failed to get template variant")
		return
	}

	RenderJSON(w, http.StatusOK, variant)
}

// Preview handles GET /api/v1/templates/preview
func (h *TemplateHandler) Preview(w http.ResponseWriter, r *http.Request) {
	html := h.templates.Preview(r.Context())

	if r.URL.Query().Get("format") == "text" {
		text, err := h.templates.PreviewText(r.Context())
		if err != nil {
			RenderError(w, http.StatusInternalServerError, "Failed to render preview")
			return
		}

		RenderJSON(w, http.StatusOK, map[string]string{"preview": text, "format": "text"})
		return
	}

	RenderJSON(w, http.StatusOK, map[string]string{"preview": html, "format": "html"})
}
