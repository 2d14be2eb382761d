package domain

// AppState is the single root aggregate advanced by the store. The store
// owns it exclusively; all reads go through cloned snapshots.
type AppState struct {
	Businesses         []Business        `json:"businesses"`
	EmailEvents        []EmailEvent      `json:"email_events"`
	SelectedBusinessID string            `json:"selected_business_id,omitempty"`
	SearchQuery        string            `json:"search_query"`
	SearchSettings     SearchSettings    `json:"search_settings"`
	APICredentials     APICredentials    `json:"api_credentials"`
	EmailSettings      EmailSettings     `json:"email_settings"`
	EmailTemplates     EmailTemplates    `json:"email_templates"`
	Stats              OutreachStats     `json:"stats"`
	IsAnalyzing        bool              `json:"is_analyzing"`
	IsSendingEmails    bool              `json:"is_sending_emails"`
	SendProgress       int               `json:"send_progress"`
	ErrorMessage       string            `json:"error_message,omitempty"`
	ConfirmationState  ConfirmationState `json:"confirmation_state"`
}

// Clone returns a deep copy of the state, so callers can never reach
// back into the store's collections
func (s AppState) Clone() AppState {
	out := s
	out.Businesses = CloneBusinesses(s.Businesses)
	out.EmailEvents = CloneEvents(s.EmailEvents)
	out.SearchSettings = s.SearchSettings.Clone()
	out.EmailTemplates = s.EmailTemplates.Clone()

	return out
}
