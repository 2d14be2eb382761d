package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/store"
	"github.com/leadscout/outreach-dashboard/internal/views"
)

// Common errors
var (
	ErrInvalidStatus = errors.New("invalid business status")
)

// TrackingService handles the engagement side of the dashboard: the
// funnel table, per-business status transitions, and the event feed.
type TrackingService struct {
	store *store.Store
	views *views.Views
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(st *store.Store, v *views.Views) *TrackingService {
	return &TrackingService{
		store: st,
		views: v,
	}
}

// Table returns all businesses ordered by funnel stage
func (s *TrackingService) Table(ctx context.Context) []domain.Business {
	return s.views.SortedByFunnel()
}

// Scoreboard returns the aggregate engagement counters and rates
func (s *TrackingService) Scoreboard(ctx context.Context) views.Scoreboard {
	return s.views.Scoreboard()
}

// Feed returns the most recent engagement entries, newest first
func (s *TrackingService) Feed(ctx context.Context, limit int) []views.FeedEntry {
	return s.views.Feed(limit)
}

// HeadsUp returns the pending / interested counters for the header bar
func (s *TrackingService) HeadsUp(ctx context.Context) views.HeadsUp {
	return s.views.HeadsUp()
}

// Events returns the engagement events recorded for one business
func (s *TrackingService) Events(ctx context.Context, businessID string) ([]domain.EmailEvent, error) {
	snap := s.views.Snapshot()

	if domain.FindBusiness(snap.Businesses, businessID) == nil {
		return nil, ErrBusinessNotFound
	}

	return s.views.EventsByBusiness()[businessID], nil
}

// Advance moves a business one step up the funnel and logs the matching
// engagement event. Already at the top stage, the status stays put but
// the event is still recorded, mirroring a repeated touch.
func (s *TrackingService) Advance(ctx context.Context, businessID string) (*domain.Business, error) {
	snap := s.views.Snapshot()

	biz := domain.FindBusiness(snap.Businesses, businessID)
	if biz == nil {
		return nil, ErrBusinessNotFound
	}

	next := biz.Status.Next()

	s.store.Dispatch(store.UpdateBusinessStatus{BusinessID: businessID, Status: next})
	event := s.store.AppendEvent(businessID, next)

	log.Printf("[TrackingService] business %s advanced to %s (event %s)", businessID, next, event.ID)

	return s.GetByID(ctx, businessID)
}

// UpdateStatus sets a business to an explicit funnel stage
func (s *TrackingService) UpdateStatus(ctx context.Context, businessID string, status domain.BusinessStatus) (*domain.Business, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	snap := s.views.Snapshot()

	if domain.FindBusiness(snap.Businesses, businessID) == nil {
		return nil, ErrBusinessNotFound
	}

	s.store.Dispatch(store.UpdateBusinessStatus{BusinessID: businessID, Status: status})
	s.store.AppendEvent(businessID, status)

	return s.GetByID(ctx, businessID)
}

// GetByID retrieves a single business
func (s *TrackingService) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	snap := s.views.Snapshot()

	biz := domain.FindBusiness(snap.Businesses, id)
	if biz == nil {
		return nil, ErrBusinessNotFound
	}

	return biz, nil
}
