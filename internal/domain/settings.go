package domain

// SearchSettings controls prospect discovery targeting
type SearchSettings struct {
	RadiusKm     int      `json:"radius_km"`
	AutoDiscover bool     `json:"auto_discover"`
	Categories   []string `json:"categories"`
}

// Clone returns a deep copy of the search settings
func (s SearchSettings) Clone() SearchSettings {
	out := s
	out.Categories = make([]string, len(s.Categories))
	copy(out.Categories, s.Categories)

	return out
}

// APICredentials holds the two opaque provider key strings. The core
// never validates or uses their contents beyond presence checks.
type APICredentials struct {
	GoogleMapsKey   string `json:"google_maps_key"`
	EmailServiceKey string `json:"email_service_key"`
}

// APICredentialsPatch is a partial credentials update; nil fields are
// left untouched by the merge
type APICredentialsPatch struct {
	GoogleMapsKey   *string `json:"google_maps_key,omitempty"`
	EmailServiceKey *string `json:"email_service_key,omitempty"`
}

// Apply shallow-merges the patch into the credentials
func (p APICredentialsPatch) Apply(creds APICredentials) APICredentials {
	if p.GoogleMapsKey != nil {
		creds.GoogleMapsKey = *p.GoogleMapsKey
	}

	if p.EmailServiceKey != nil {
		creds.EmailServiceKey = *p.EmailServiceKey
	}

	return creds
}

// EmailSettings governs outreach cadence. Sending window boundaries are
// time-of-day strings in HH:MM form.
type EmailSettings struct {
	DailyLimit         int    `json:"daily_limit"`
	ThrottleSeconds    int    `json:"throttle_seconds"`
	SendingWindowStart string `json:"sending_window_start"`
	SendingWindowEnd   string `json:"sending_window_end"`
}

// EmailSettingsPatch is a partial email settings update
type EmailSettingsPatch struct {
	DailyLimit         *int    `json:"daily_limit,omitempty"`
	ThrottleSeconds    *int    `json:"throttle_seconds,omitempty"`
	SendingWindowStart *string `json:"sending_window_start,omitempty"`
	SendingWindowEnd   *string `json:"sending_window_end,omitempty"`
}

// Apply shallow-merges the patch into the settings
func (p EmailSettingsPatch) Apply(settings EmailSettings) EmailSettings {
	if p.DailyLimit != nil {
		settings.DailyLimit = *p.DailyLimit
	}

	if p.ThrottleSeconds != nil {
		settings.ThrottleSeconds = *p.ThrottleSeconds
	}

	if p.SendingWindowStart != nil {
		settings.SendingWindowStart = *p.SendingWindowStart
	}

	if p.SendingWindowEnd != nil {
		settings.SendingWindowEnd = *p.SendingWindowEnd
	}

	return settings
}

// ConfirmationState tracks the send-confirmation dialog. BusinessID is
// empty when no dialog target is pending.
type ConfirmationState struct {
	Open       bool   `json:"open"`
	BusinessID string `json:"business_id,omitempty"`
}
