package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadscout/outreach-dashboard/internal/domain"
)

var reduceNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func testState() domain.AppState {
	return domain.Seed(reduceNow)
}

func TestReduceSelectBusiness(t *testing.T) {
	state := reduce(testState(), SelectBusiness{BusinessID: "biz-003"}, reduceNow)
	assert.Equal(t, "biz-003", state.SelectedBusinessID)

	state = reduce(state, SelectBusiness{}, reduceNow)
	assert.Empty(t, state.SelectedBusinessID)
}

func TestReduceQueueEmailSend(t *testing.T) {
	tests := []struct {
		name           string
		businessID     string
		expectedStatus domain.BusinessStatus
	}{
		{"not contacted advances to email sent", "biz-001", domain.StatusEmailSent},
		{"opened keeps its status", "biz-003", domain.StatusOpened},
		{"interested keeps its status", "biz-007", domain.StatusInterested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := testState()
			state := reduce(initial, QueueEmailSend{BusinessID: tt.businessID}, reduceNow)

			biz := domain.FindBusiness(state.Businesses, tt.businessID)
			require.NotNil(t, biz)

			assert.Equal(t, tt.expectedStatus, biz.Status)
			require.NotNil(t, biz.LastInteraction)
			assert.Equal(t, reduceNow, *biz.LastInteraction)

			assert.True(t, state.IsSendingEmails)
			assert.Equal(t, 10, state.SendProgress)
			assert.False(t, state.ConfirmationState.Open)

			// Stats follow the business collection
			assert.Equal(t, domain.ComputeStats(state.Businesses), state.Stats)
		})
	}
}

func TestReduceQueueEmailSendUnknownBusiness(t *testing.T) {
	initial := testState()
	state := reduce(initial, QueueEmailSend{BusinessID: "biz-999"}, reduceNow)

	// No business changes, but the send flags still flip
	assert.Equal(t, initial.Businesses, state.Businesses)
	assert.True(t, state.IsSendingEmails)
	assert.Equal(t, 10, state.SendProgress)
}

func TestReduceUpdateBusinessStatus(t *testing.T) {
	state := reduce(testState(), UpdateBusinessStatus{BusinessID: "biz-001", Status: domain.StatusInterested}, reduceNow)

	biz := domain.FindBusiness(state.Businesses, "biz-001")
	require.NotNil(t, biz)

	assert.Equal(t, domain.StatusInterested, biz.Status)
	assert.Equal(t, domain.ComputeStats(state.Businesses), state.Stats)
}

func TestReduceUpdateBusinessStatusDoesNotMutateInput(t *testing.T) {
	initial := testState()
	before := domain.FindBusiness(initial.Businesses, "biz-001").Status

	_ = reduce(initial, UpdateBusinessStatus{BusinessID: "biz-001", Status: domain.StatusReplied}, reduceNow)

	assert.Equal(t, before, domain.FindBusiness(initial.Businesses, "biz-001").Status)
}

func TestReduceUpdateTemplateContent(t *testing.T) {
	state := reduce(testState(), UpdateTemplateContent{VariantID: "variant-b", Content: "rewritten"}, reduceNow)

	variant := state.EmailTemplates.Variant("variant-b")
	require.NotNil(t, variant)
	assert.Equal(t, "rewritten", variant.Content)
}

func TestReduceUpdateTemplateContentUnknownVariant(t *testing.T) {
	initial := testState()
	state := reduce(initial, UpdateTemplateContent{VariantID: "variant-zz", Content: "rewritten"}, reduceNow)

	// Unknown variant leaves the collection value-identical
	assert.Equal(t, initial.EmailTemplates.Variants, state.EmailTemplates.Variants)
}

func TestReduceSettingsPatches(t *testing.T) {
	key := "sk-test"
	limit := 25

	state := reduce(testState(), UpdateAPICredentials{Patch: domain.APICredentialsPatch{GoogleMapsKey: &key}}, reduceNow)
	assert.Equal(t, "sk-test", state.APICredentials.GoogleMapsKey)
	assert.Empty(t, state.APICredentials.EmailServiceKey)

	state = reduce(state, UpdateEmailSettings{Patch: domain.EmailSettingsPatch{DailyLimit: &limit}}, reduceNow)
	assert.Equal(t, 25, state.EmailSettings.DailyLimit)
	// Unpatched fields keep their seeded values
	assert.Equal(t, "09:00", state.EmailSettings.SendingWindowStart)
}

func TestReduceStatsPatchBypassesRecompute(t *testing.T) {
	sent := 999

	state := reduce(testState(), UpdateStats{Patch: domain.StatsPatch{EmailsSent: &sent}}, reduceNow)

	assert.Equal(t, 999, state.Stats.EmailsSent)
	assert.Equal(t, 12, state.Stats.TotalAnalyzed)
}

func TestReduceFlagsAndConfirmation(t *testing.T) {
	state := reduce(testState(), SetAnalyzing{Value: true}, reduceNow)
	assert.True(t, state.IsAnalyzing)

	state = reduce(state, SetError{Message: "analysis failed"}, reduceNow)
	assert.Equal(t, "analysis failed", state.ErrorMessage)

	state = reduce(state, SetError{}, reduceNow)
	assert.Empty(t, state.ErrorMessage)

	state = reduce(state, OpenConfirmation{BusinessID: "biz-004"}, reduceNow)
	assert.True(t, state.ConfirmationState.Open)
	assert.Equal(t, "biz-004", state.ConfirmationState.BusinessID)

	state = reduce(state, CloseConfirmation{}, reduceNow)
	assert.False(t, state.ConfirmationState.Open)
	assert.Empty(t, state.ConfirmationState.BusinessID)
}

func TestReduceUnknownActionReturnsStateUnchanged(t *testing.T) {
	initial := testState()

	state := reduce(initial, nil, reduceNow)

	assert.Equal(t, initial.SelectedBusinessID, state.SelectedBusinessID)
	assert.Equal(t, initial.Businesses, state.Businesses)
	assert.Equal(t, initial.Stats, state.Stats)
}
