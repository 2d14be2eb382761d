package domain

import "time"

// EventType classifies an email lifecycle occurrence
type EventType string

const (
	EventSent      EventType = "sent"
	EventDelivered EventType = "delivered"
	EventOpened    EventType = "opened"
	EventClicked   EventType = "clicked"
	EventReply     EventType = "reply"
)

// Label returns the human readable event label for the engagement feed
func (t EventType) Label() string {
	switch t {
	case EventSent:
		return "Email sent"
	case EventDelivered:
		return "Delivered"
	case EventOpened:
		return "Opened"
	case EventClicked:
		return "Clicked link"
	case EventReply:
		return "Reply received"
	default:
		return string(t)
	}
}

// EmailEvent is an append-only engagement record tied to one business.
// Events are never merged, removed, or deduplicated; the BusinessID is a
// loose reference and may outlive any validation the boundary performs.
type EmailEvent struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventTypeForStatus derives the engagement event type recorded for a
// status transition. not_interested collapses into the reply bucket, the
// same as replied and interested; anything unrecognized records a send.
func EventTypeForStatus(status BusinessStatus) EventType {
	switch status {
	case StatusEmailSent:
		return EventSent
	case StatusOpened:
		return EventOpened
	case StatusReplied, StatusInterested:
		return EventReply
	case StatusNotInterested:
		return EventReply
	default:
		return EventSent
	}
}

// CloneEvents returns a copy of an event log slice
func CloneEvents(events []EmailEvent) []EmailEvent {
	if events == nil {
		return nil
	}

	out := make([]EmailEvent, len(events))
	copy(out, events)

	return out
}
