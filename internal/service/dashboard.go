package service

import (
	"context"

	"github.com/leadscout/outreach-dashboard/internal/views"
)

// DashboardService handles the overview page aggregates
type DashboardService struct {
	views *views.Views
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(v *views.Views) *DashboardService {
	return &DashboardService{views: v}
}

// Overview returns the headline stats, funnel breakdown, and trend
func (s *DashboardService) Overview(ctx context.Context) views.Overview {
	return s.views.Overview()
}

// Trend returns just the daily engagement trend series
func (s *DashboardService) Trend(ctx context.Context) []views.TrendPoint {
	return s.views.Overview().Trend
}
