package service

import (
	"context"
	"errors"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/store"
	"github.com/leadscout/outreach-dashboard/internal/views"
)

// Common errors
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrInvalidRadius    = errors.New("search radius must be positive")
)

// AreaScanner runs the simulated area analysis
type AreaScanner interface {
	Analyze(ctx context.Context)
}

// ExplorerService handles map exploration: listing and filtering the
// mock businesses, selecting one, and tuning the discovery settings.
type ExplorerService struct {
	store   *store.Store
	views   *views.Views
	scanner AreaScanner
}

// NewExplorerService creates a new ExplorerService
func NewExplorerService(st *store.Store, v *views.Views, scanner AreaScanner) *ExplorerService {
	return &ExplorerService{
		store:   st,
		views:   v,
		scanner: scanner,
	}
}

// List returns the businesses matching the current search query
func (s *ExplorerService) List(ctx context.Context) []domain.Business {
	return s.views.Filtered()
}

// Search returns the businesses matching an ad-hoc query. The stored
// search settings are left alone; UpdateSearchQuery is the mutation.
func (s *ExplorerService) Search(ctx context.Context, query string) []domain.Business {
	return s.views.FilteredBy(query)
}

// GetByID retrieves a single business
func (s *ExplorerService) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	snap := s.views.Snapshot()

	biz := domain.FindBusiness(snap.Businesses, id)
	if biz == nil {
		return nil, ErrBusinessNotFound
	}

	return biz, nil
}

// Select marks a business as the current map focus. An empty id clears
// the selection.
func (s *ExplorerService) Select(ctx context.Context, id string) error {
	if id != "" {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
	}

	s.store.Dispatch(store.SelectBusiness{BusinessID: id})
	return nil
}

// MapCenter returns the coordinates the map viewport should focus on
func (s *ExplorerService) MapCenter(ctx context.Context) domain.Location {
	return s.views.MapCenter()
}

// FocusBusiness returns the business the map panel highlights, if any
func (s *ExplorerService) FocusBusiness(ctx context.Context) *domain.Business {
	return s.views.FocusBusiness()
}

// UpdateSearchQuery replaces the current search filter text
func (s *ExplorerService) UpdateSearchQuery(ctx context.Context, query string) {
	s.store.Dispatch(store.UpdateSearchQuery{Value: query})
}

// SetRadius updates the discovery search radius in kilometers
func (s *ExplorerService) SetRadius(ctx context.Context, radiusKm int) error {
	if radiusKm <= 0 {
		return ErrInvalidRadius
	}

	s.store.Dispatch(store.UpdateSearchRadius{Value: radiusKm})
	return nil
}

// ToggleAutoDiscover flips the automatic discovery setting and returns
// the new value
func (s *ExplorerService) ToggleAutoDiscover(ctx context.Context) bool {
	next := !s.views.Snapshot().SearchSettings.AutoDiscover
	s.store.Dispatch(store.ToggleAutoDiscover{Value: next})
	return next
}

// AnalyzeArea kicks off the simulated area analysis
func (s *ExplorerService) AnalyzeArea(ctx context.Context) {
	s.scanner.Analyze(ctx)
}
