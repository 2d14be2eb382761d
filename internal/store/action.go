package store

import "github.com/leadscout/outreach-dashboard/internal/domain"

// Action is the closed set of state transitions the store accepts. The
// set is sealed: only types in this package implement it, so the reducer
// switch is exhaustive by construction.
type Action interface {
	isAction()
}

// SelectBusiness sets the selected business id. No existence check.
type SelectBusiness struct {
	BusinessID string
}

// UpdateSearchQuery replaces the search query
type UpdateSearchQuery struct {
	Value string
}

// UpdateSearchRadius replaces the discovery radius in kilometers
type UpdateSearchRadius struct {
	Value int
}

// ToggleAutoDiscover sets the auto-discover flag
type ToggleAutoDiscover struct {
	Value bool
}

// UpdateAPICredentials shallow-merges a patch into the credentials
type UpdateAPICredentials struct {
	Patch domain.APICredentialsPatch
}

// UpdateEmailSettings shallow-merges a patch into the email settings
type UpdateEmailSettings struct {
	Patch domain.EmailSettingsPatch
}

// UpdateTemplateContent replaces the matching variant's content. A
// non-matching variant id is a silent no-op.
type UpdateTemplateContent struct {
	VariantID string
	Content   string
}

// SetActiveTemplateVariant sets the active variant id. No existence check.
type SetActiveTemplateVariant struct {
	VariantID string
}

// QueueEmailSend starts an outreach send for one business: advances it
// from not_contacted to email_sent (other statuses keep their value but
// still get a LastInteraction stamp), recomputes stats, flips the
// sending flag on with progress at 10, and closes the confirmation
// dialog.
type QueueEmailSend struct {
	BusinessID string
}

// UpdateBusinessStatus unconditionally sets a business status, stamps
// LastInteraction, and recomputes stats
type UpdateBusinessStatus struct {
	BusinessID string
	Status     domain.BusinessStatus
}

// SetAnalyzing sets the area-scan flag
type SetAnalyzing struct {
	Value bool
}

// SetSending sets the sending flag
type SetSending struct {
	Value bool
}

// SetSendProgress sets the send progress. The reducer does not clamp;
// the sequencer driving the value keeps it in [0,100].
type SetSendProgress struct {
	Value int
}

// SetError sets the user-visible error message; empty clears it
type SetError struct {
	Message string
}

// UpdateStats shallow-merges a patch into the stats, bypassing
// recomputation. Escape hatch for external overrides.
type UpdateStats struct {
	Patch domain.StatsPatch
}

// OpenConfirmation opens the send-confirmation dialog for a business
type OpenConfirmation struct {
	BusinessID string
}

// CloseConfirmation clears the confirmation dialog
type CloseConfirmation struct{}

func (SelectBusiness) isAction()           {}
func (UpdateSearchQuery) isAction()        {}
func (UpdateSearchRadius) isAction()       {}
func (ToggleAutoDiscover) isAction()       {}
func (UpdateAPICredentials) isAction()     {}
func (UpdateEmailSettings) isAction()      {}
func (UpdateTemplateContent) isAction()    {}
func (SetActiveTemplateVariant) isAction() {}
func (QueueEmailSend) isAction()           {}
func (UpdateBusinessStatus) isAction()     {}
func (SetAnalyzing) isAction()             {}
func (SetSending) isAction()               {}
func (SetSendProgress) isAction()          {}
func (SetError) isAction()                 {}
func (UpdateStats) isAction()              {}
func (OpenConfirmation) isAction()         {}
func (CloseConfirmation) isAction()        {}
