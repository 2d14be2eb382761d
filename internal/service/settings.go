package service

import (
	"context"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/store"
	"github.com/leadscout/outreach-dashboard/internal/views"
)

// SettingsService handles the configuration panel: API credentials,
// email sending limits, and the global error banner.
type SettingsService struct {
	store *store.Store
	views *views.Views
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(st *store.Store, v *views.Views) *SettingsService {
	return &SettingsService{
		store: st,
		views: v,
	}
}

// Credentials returns the stored API credentials
func (s *SettingsService) Credentials(ctx context.Context) domain.APICredentials {
	return s.views.Snapshot().APICredentials
}

// UpdateCredentials applies a partial credentials update; nil fields
// keep their current value
func (s *SettingsService) UpdateCredentials(ctx context.Context, patch domain.APICredentialsPatch) domain.APICredentials {
	s.store.Dispatch(store.UpdateAPICredentials{Patch: patch})
	return s.views.Snapshot().APICredentials
}

// EmailSettings returns the sending limits and window
func (s *SettingsService) EmailSettings(ctx context.Context) domain.EmailSettings {
	return s.views.Snapshot().EmailSettings
}

// UpdateEmailSettings applies a partial email settings update
func (s *SettingsService) UpdateEmailSettings(ctx context.Context, patch domain.EmailSettingsPatch) domain.EmailSettings {
	s.store.Dispatch(store.UpdateEmailSettings{Patch: patch})
	return s.views.Snapshot().EmailSettings
}

// SearchSettings returns the discovery settings
func (s *SettingsService) SearchSettings(ctx context.Context) domain.SearchSettings {
	return s.views.Snapshot().SearchSettings
}

// UpdateStats applies a partial override to the outreach counters
func (s *SettingsService) UpdateStats(ctx context.Context, patch domain.StatsPatch) domain.OutreachStats {
	s.store.Dispatch(store.UpdateStats{Patch: patch})
	return s.views.Snapshot().Stats
}

// SetError raises the global error banner
func (s *SettingsService) SetError(ctx context.Context, message string) {
	s.store.Dispatch(store.SetError{Message: message})
}

// ClearError dismisses the global error banner
func (s *SettingsService) ClearError(ctx context.Context) {
	s.store.Dispatch(store.SetError{})
}

// ErrorMessage returns the current error banner text, empty when none
func (s *SettingsService) ErrorMessage(ctx context.Context) string {
	return s.views.Snapshot().ErrorMessage
}
