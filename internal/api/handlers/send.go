package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/leadscout/outreach-dashboard/internal/service"
)

// OutreachServiceInterface defines the outreach service methods
type OutreachServiceInterface interface {
	OpenConfirmation(ctx context.Context, businessID string) error
	CloseConfirmation(ctx context.Context)
	ConfirmSend(ctx context.Context) (uuid.UUID, error)
	Send(ctx context.Context, businessID string) (uuid.UUID, error)
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Progress(ctx context.Context) service.SendProgress
}

// SendHandler handles the email send workflow requests
type SendHandler struct {
	outreach OutreachServiceInterface
}

// NewSendHandler creates a new SendHandler
func NewSendHandler(outreach OutreachServiceInterface) *SendHandler {
	return &SendHandler{outreach: outreach}
}

// OpenConfirmation handles POST /api/v1/businesses/{id}/send
func (h *SendHandler) OpenConfirmation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.outreach.OpenConfirmation(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			RenderError(w, http.StatusNotFound, "Business not found")
			return
		}
		RenderError(w, http.StatusInternalServerError, "Failed to open confirmation")
		return
	}

	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"confirmation_open": true,
		"business_id":       id,
	})
}

// Confirm handles POST /api/v1/send/confirm
func (h *SendHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	taskID, err := h.outreach.ConfirmSend(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPendingConfirm):
			RenderError(w, http.StatusConflict, "No send confirmation pending")
		case errors.Is(err, service.ErrSendInFlight):
			RenderError(w, http.StatusConflict, "A send is already in flight")
		case errors.Is(err, service.ErrBusinessNotFound):
			RenderError(w, http.StatusNotFound, "Business not found")
		default:
			RenderError(w, http.StatusInternalServerError, "Failed to start send")
		}
		return
	}

	RenderJSON(w, http.StatusAccepted, map[string]interface{}{
		"task_id":  taskID,
		"progress": h.outreach.Progress(r.Context()),
	})
}

// Cancel handles POST /api/v1/send/cancel
func (h *SendHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.outreach.CloseConfirmation(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Progress handles GET /api/v1/send/progress
func (h *SendHandler) Progress(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, http.StatusOK, h.outreach.Progress(r.Context()))
}

// Pause handles POST /api/v1/send/pause
func (h *SendHandler) Pause(w http.ResponseWriter, r *http.Request) {
	if err := h.outreach.Pause(r.Context()); err != nil {
		RenderError(w, http.StatusConflict, "No send in flight")
		return
	}

	RenderJSON(w, http.StatusOK, h.outreach.Progress(r.Context()))
}

// Resume handles POST /api/v1/send/resume
func (h *SendHandler) Resume(w http.ResponseWriter, r *http.Request) {
	if err := h.outreach.Resume(r.Context()); err != nil {
		RenderError(w, http.StatusConflict, "No send in flight")
		return
	}

	RenderJSON(w, http.StatusOK, h.outreach.Progress(r.Context()))
}
