package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/sequencer"
	"github.com/leadscout/outreach-dashboard/internal/store"
	"github.com/leadscout/outreach-dashboard/internal/views"
)

// Common errors
var (
	ErrSendInFlight     = errors.New("a send is already in flight")
	ErrNoSendInFlight   = errors.New("no send in flight")
	ErrNoPendingConfirm = errors.New("no send confirmation pending")
)

// SendSequencer drives the simulated email send
type SendSequencer interface {
	Start(ctx context.Context, businessID string) (uuid.UUID, error)
	Resume(ctx context.Context) error
	Pause()
	InFlight() (string, bool)
}

// SendProgress reports the state of the simulated send for the UI
type SendProgress struct {
	Sending      bool   `json:"sending"`
	Progress     int    `json:"progress"`
	BusinessID   string `json:"business_id,omitempty"`
	Confirmation bool   `json:"confirmation_open"`
}

// OutreachService handles the send workflow: the confirmation dialog,
// kicking off the simulated send, and its pause / resume controls.
type OutreachService struct {
	store *store.Store
	views *views.Views
	seq   SendSequencer
}

// NewOutreachService creates a new OutreachService
func NewOutreachService(st *store.Store, v *views.Views, seq SendSequencer) *OutreachService {
	return &OutreachService{
		store: st,
		views: v,
		seq:   seq,
	}
}

// OpenConfirmation opens the send confirmation dialog for a business
func (s *OutreachService) OpenConfirmation(ctx context.Context, businessID string) error {
	snap := s.views.Snapshot()

	if domain.FindBusiness(snap.Businesses, businessID) == nil {
		return ErrBusinessNotFound
	}

	s.store.Dispatch(store.OpenConfirmation{BusinessID: businessID})
	return nil
}

// CloseConfirmation dismisses the send confirmation dialog
func (s *OutreachService) CloseConfirmation(ctx context.Context) {
	s.store.Dispatch(store.CloseConfirmation{})
}

// ConfirmSend starts the simulated send for the business the open
// confirmation dialog points at. Returns the send task id.
func (s *OutreachService) ConfirmSend(ctx context.Context) (uuid.UUID, error) {
	snap := s.views.Snapshot()

	if !snap.ConfirmationState.Open || snap.ConfirmationState.BusinessID == "" {
		return uuid.Nil, ErrNoPendingConfirm
	}

	return s.Send(ctx, snap.ConfirmationState.BusinessID)
}

// Send starts the simulated send for one business directly, skipping
// the confirmation dialog
func (s *OutreachService) Send(ctx context.Context, businessID string) (uuid.UUID, error) {
	snap := s.views.Snapshot()

	if domain.FindBusiness(snap.Businesses, businessID) == nil {
		return uuid.Nil, ErrBusinessNotFound
	}

	taskID, err := s.seq.Start(ctx, businessID)
	if err != nil {
		if errors.Is(err, sequencer.ErrSendInFlight) {
			return uuid.Nil, ErrSendInFlight
		}
		return uuid.Nil, fmt.Errorf("failed to start send: %w", err)
	}

	log.Printf("[OutreachService] send %s started for business %s", taskID, businessID)

	return taskID, nil
}

// Pause suspends the in-flight send, keeping its progress
func (s *OutreachService) Pause(ctx context.Context) error {
	if _, ok := s.seq.InFlight(); !ok {
		return ErrNoSendInFlight
	}

	s.seq.Pause()
	return nil
}

// Resume continues a paused send from its persisted progress
func (s *OutreachService) Resume(ctx context.Context) error {
	if err := s.seq.Resume(ctx); err != nil {
		if errors.Is(err, sequencer.ErrNoSendInFlight) {
			return ErrNoSendInFlight
		}
		return fmt.Errorf("failed to resume send: %w", err)
	}

	return nil
}

// Progress reports the current send state for the UI
func (s *OutreachService) Progress(ctx context.Context) SendProgress {
	snap := s.views.Snapshot()

	target, _ := s.seq.InFlight()

	return SendProgress{
		Sending:      snap.IsSendingEmails,
		Progress:     snap.SendProgress,
		BusinessID:   target,
		Confirmation: snap.ConfirmationState.Open,
	}
}
