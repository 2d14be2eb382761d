package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/leadscout/outreach-dashboard/internal/domain"
)

// SettingsServiceInterface defines the settings service methods
type SettingsServiceInterface interface {
	Credentials(ctx context.Context) domain.APICredentials
	UpdateCredentials(ctx context.Context, patch domain.APICredentialsPatch) domain.APICredentials
	EmailSettings(ctx context.Context) domain.EmailSettings
	UpdateEmailSettings(ctx context.Context, patch domain.EmailSettingsPatch) domain.EmailSettings
	SearchSettings(ctx context.Context) domain.SearchSettings
	UpdateStats(ctx context.Context, patch domain.StatsPatch) domain.OutreachStats
	SetError(ctx context.Context, message string)
	ClearError(ctx context.Context)
	ErrorMessage(ctx context.Context) string
}

// SettingsHandler handles configuration panel requests
type SettingsHandler struct {
	settings SettingsServiceInterface
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settings SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"credentials": h.settings.Credentials(r.Context()),
		"email":       h.settings.EmailSettings(r.Context()),
		"search":      h.settings.SearchSettings(r.Context()),
	})
}

// UpdateCredentials handles PATCH /api/v1/settings/credentials
func (h *SettingsHandler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	var patch domain.APICredentialsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		RenderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	RenderJSON(w, http.StatusOK, h.settings.UpdateCredentials(r.Context(), patch))
}

// UpdateEmailSettings handles PATCH /api/v1/settings/email
func (h *SettingsHandler) UpdateEmailSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.EmailSettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		RenderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	RenderJSON(w, http.StatusOK, h.settings.UpdateEmailSettings(r.Context(), patch))
}

// UpdateStats handles PATCH /api/v1/stats
func (h *SettingsHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	var patch domain.StatsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		RenderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	RenderJSON(w, http.StatusOK, h.settings.UpdateStats(r.Context(), patch))
}

// GetError handles GET /api/v1/error
func (h *SettingsHandler) GetError(w http.ResponseWriter, r *http.Request) {
	msg := h.settings.ErrorMessage(r.Context())

	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"message": msg,
		"present": msg != "",
	})
}

// SetError handles PUT /api/v1/error
func (h *SettingsHandler) SetError(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.settings.SetError(r.Context(), req.Message)
	w.WriteHeader(http.StatusNoContent)
}

// ClearError handles DELETE /api/v1/error
func (h *SettingsHandler) ClearError(w http.ResponseWriter, r *http.Request) {
	h.settings.ClearError(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
