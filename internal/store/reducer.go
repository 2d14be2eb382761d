package store

import (
	"time"

	"github.com/leadscout/outreach-dashboard/internal/domain"
)

// reduce is the pure transition function: every action produces a fresh
// state value; the previous one is never mutated. All actions are total —
// a missing business or variant id degrades to returning an equivalent
// state, never an error.
func reduce(state domain.AppState, action Action, now time.Time) domain.AppState {
	switch a := action.(type) {
	case SelectBusiness:
		state.SelectedBusinessID = a.BusinessID
		return state

	case UpdateSearchQuery:
		state.SearchQuery = a.Value
		return state

	case UpdateSearchRadius:
		state.SearchSettings = state.SearchSettings.Clone()
		state.SearchSettings.RadiusKm = a.Value
		return state

	case ToggleAutoDiscover:
		state.SearchSettings = state.SearchSettings.Clone()
		state.SearchSettings.AutoDiscover = a.Value
		return state

	case UpdateAPICredentials:
		state.APICredentials = a.Patch.Apply(state.APICredentials)
		return state

	case UpdateEmailSettings:
		state.EmailSettings = a.Patch.Apply(state.EmailSettings)
		return state

	case UpdateTemplateContent:
		templates := state.EmailTemplates.Clone()
		for i := range templates.Variants {
			if templates.Variants[i].ID == a.VariantID {
				templates.Variants[i].Content = a.Content
			}
		}

		state.EmailTemplates = templates

		return state

	case SetActiveTemplateVariant:
		templates := state.EmailTemplates.Clone()
		templates.ActiveVariantID = a.VariantID
		state.EmailTemplates = templates

		return state

	case QueueEmailSend:
		state.Businesses = updateBusiness(state.Businesses, a.BusinessID, func(biz domain.Business) domain.Business {
			if biz.Status == domain.StatusNotContacted {
				biz.Status = domain.StatusEmailSent
			}

			t := now.UTC()
			biz.LastInteraction = &t

			return biz
		})
		state.Stats = domain.ComputeStats(state.Businesses)
		state.IsSendingEmails = true
		state.SendProgress = 10
		state.ConfirmationState = domain.ConfirmationState{}

		return state

	case UpdateBusinessStatus:
		state.Businesses = updateBusiness(state.Businesses, a.BusinessID, func(biz domain.Business) domain.Business {
			biz.Status = a.Status

			t := now.UTC()
			biz.LastInteraction = &t

			return biz
		})
		state.Stats = domain.ComputeStats(state.Businesses)

		return state

	case SetAnalyzing:
		state.IsAnalyzing = a.Value
		return state

	case SetSending:
		state.IsSendingEmails = a.Value
		return state

	case SetSendProgress:
		state.SendProgress = a.Value
		return state

	case SetError:
		state.ErrorMessage = a.Message
		return state

	case UpdateStats:
		state.Stats = a.Patch.Apply(state.Stats)
		return state

	case OpenConfirmation:
		state.ConfirmationState = domain.ConfirmationState{Open: true, BusinessID: a.BusinessID}
		return state

	case CloseConfirmation:
		state.ConfirmationState = domain.ConfirmationState{}
		return state

	default:
		// Unknown (including nil) actions leave the state unchanged.
		return state
	}
}

// updateBusiness maps over the collection replacing the matching record.
// A non-matching id produces a value-equal copy, which is how missing
// businesses degrade to no-ops.
func updateBusiness(businesses []domain.Business, id string, fn func(domain.Business) domain.Business) []domain.Business {
	out := make([]domain.Business, len(businesses))

	for i, biz := range businesses {
		if biz.ID == id {
			out[i] = fn(biz.Clone())
		} else {
			out[i] = biz.Clone()
		}
	}

	return out
}
