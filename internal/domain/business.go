package domain

import "time"

// BusinessStatus represents a prospect's position in the outreach funnel
type BusinessStatus string

const (
	StatusNotContacted  BusinessStatus = "not_contacted"
	StatusEmailSent     BusinessStatus = "email_sent"
	StatusOpened        BusinessStatus = "opened"
	StatusReplied       BusinessStatus = "replied"
	StatusInterested    BusinessStatus = "interested"
	StatusNotInterested BusinessStatus = "not_interested"
)

// StatusPriority lists the funnel statuses in outreach priority order.
// The tracking view sorts by this ranking and "advance" moves one rank
// forward. not_interested is a terminal side state and sorts last.
var StatusPriority = []BusinessStatus{
	StatusNotContacted,
	StatusEmailSent,
	StatusOpened,
	StatusReplied,
	StatusInterested,
	StatusNotInterested,
}

// Valid returns true if the status is one of the six defined values
func (s BusinessStatus) Valid() bool {
	for _, status := range StatusPriority {
		if s == status {
			return true
		}
	}

	return false
}

// Rank returns the funnel priority rank of the status.
// Unknown statuses rank 0 so they sort with untouched prospects.
func (s BusinessStatus) Rank() int {
	for i, status := range StatusPriority {
		if s == status {
			return i
		}
	}

	return 0
}

// Next returns the status one rank forward, capped at the last rank
func (s BusinessStatus) Next() BusinessStatus {
	next := s.Rank() + 1
	if next >= len(StatusPriority) {
		next = len(StatusPriority) - 1
	}

	return StatusPriority[next]
}

// Label returns the human readable status label
func (s BusinessStatus) Label() string {
	switch s {
	case StatusNotContacted:
		return "Not Contacted"
	case StatusEmailSent:
		return "Email Sent"
	case StatusOpened:
		return "Opened"
	case StatusReplied:
		return "Replied"
	case StatusInterested:
		return "Interested"
	case StatusNotInterested:
		return "Not Interested"
	default:
		return string(s)
	}
}

// Location is a geographic point
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Business is one prospect record representing a real-world establishment
// evaluated for outreach. The ID is unique and immutable; records are
// created once from seed data and mutated only by replacement through
// store actions, never deleted.
type Business struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Address         string         `json:"address"`
	Phone           string         `json:"phone"`
	Rating          float64        `json:"rating"`
	TotalReviews    int            `json:"total_reviews"`
	HasWebsite      bool           `json:"has_website"`
	Location        Location       `json:"location"`
	Status          BusinessStatus `json:"status"`
	LastInteraction *time.Time     `json:"last_interaction,omitempty"`
}

// Clone returns a deep copy of the business
func (b Business) Clone() Business {
	out := b
	if b.LastInteraction != nil {
		t := *b.LastInteraction
		out.LastInteraction = &t
	}

	return out
}

// CloneBusinesses returns a deep copy of a business collection
func CloneBusinesses(businesses []Business) []Business {
	if businesses == nil {
		return nil
	}

	out := make([]Business, len(businesses))
	for i, biz := range businesses {
		out[i] = biz.Clone()
	}

	return out
}

// FindBusiness returns the business with the given id, or nil
func FindBusiness(businesses []Business, id string) *Business {
	for i := range businesses {
		if businesses[i].ID == id {
			return &businesses[i]
		}
	}

	return nil
}
