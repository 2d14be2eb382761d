package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/store"
	"github.com/leadscout/outreach-dashboard/internal/views"
)

// Common errors
var (
	ErrVariantNotFound = errors.New("template variant not found")
)

// TemplateService handles the email template editor: variant selection,
// content edits, and the personalized preview.
type TemplateService struct {
	store *store.Store
	views *views.Views
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(st *store.Store, v *views.Views) *TemplateService {
	return &TemplateService{
		store: st,
		views: v,
	}
}

// Variants returns all template variants plus the active variant id
func (s *TemplateService) Variants(ctx context.Context) domain.EmailTemplates {
	return s.views.Snapshot().EmailTemplates
}

// GetVariant retrieves a single template variant
func (s *TemplateService) GetVariant(ctx context.Context, id string) (*domain.EmailTemplateVariant, error) {
	templates := s.views.Snapshot().EmailTemplates

	variant := templates.Variant(id)
	if variant == nil {
		return nil, fmt.Errorf("%w: %s", ErrVariantNotFound, id)
	}

	return variant, nil
}

// Activate switches which template variant is used for sends
func (s *TemplateService) Activate(ctx context.Context, id string) error {
	if _, err := s.GetVariant(ctx, id); err != nil {
		return err
	}

	s.store.Dispatch(store.SetActiveTemplateVariant{VariantID: id})
	return nil
}

// UpdateContent replaces the body of one template variant
func (s *TemplateService) UpdateContent(ctx context.Context, id, content string) error {
	if _, err := s.GetVariant(ctx, id); err != nil {
		return err
	}

	s.store.Dispatch(store.UpdateTemplateContent{VariantID: id, Content: content})
	return nil
}

// Preview renders the active template against the selected business,
// with personalization tokens substituted and newlines as <br/>
func (s *TemplateService) Preview(ctx context.Context) string {
	return s.views.Preview()
}

// PreviewText renders the preview as plain text with markup stripped
func (s *TemplateService) PreviewText(ctx context.Context) (string, error) {
	return s.views.PreviewText()
}
