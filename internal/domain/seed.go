package domain

import (
	"strconv"
	"time"
)

// DefaultMapCenter is the continental fallback used when no businesses
// match the active filter
var DefaultMapCenter = Location{Lat: 37.0902, Lng: -95.7129}

type seedBusiness struct {
	id         string
	name       string
	category   string
	address    string
	phone      string
	rating     float64
	reviews    int
	hasWebsite bool
	lat        float64
	lng        float64
	status     BusinessStatus
	lastTouch  time.Duration // offset back from seed time; 0 = never
}

var seedBusinesses = []seedBusiness{
	{"biz-001", "Lone Star Coffee Roasters", "Coffee Shop", "1204 S Congress Ave, Austin, TX", "(512) 555-0134", 4.7, 318, false, 30.2485, -97.7497, StatusNotContacted, 0},
	{"biz-002", "Hill Country Dental Studio", "Dentist", "4501 Burnet Rd, Austin, TX", "(512) 555-0188", 4.9, 204, true, 30.3221, -97.7394, StatusEmailSent, 26 * time.Hour},
	{"biz-003", "Barton Springs Yoga", "Yoga Studio", "1717 Barton Springs Rd, Austin, TX", "(512) 555-0121", 4.8, 156, false, 30.2639, -97.7633, StatusOpened, 9 * time.Hour},
	{"biz-004", "East Side Vinyl & Books", "Book Store", "2010 E Cesar Chavez St, Austin, TX", "(512) 555-0175", 4.6, 89, false, 30.2563, -97.7196, StatusNotContacted, 0},
	{"biz-005", "Pecan Grove BBQ", "Restaurant", "900 W 6th St, Austin, TX", "(512) 555-0102", 4.5, 1231, true, 30.2708, -97.7533, StatusReplied, 3 * time.Hour},
	{"biz-006", "Armadillo Auto Care", "Auto Repair", "7815 Lamar Blvd, Austin, TX", "(512) 555-0147", 4.4, 412, false, 30.3520, -97.7135, StatusNotContacted, 0},
	{"biz-007", "Violet Crown Florals", "Florist", "2438 W Anderson Ln, Austin, TX", "(512) 555-0163", 4.9, 77, false, 30.3589, -97.7324, StatusInterested, 90 * time.Minute},
	{"biz-008", "Capital City Climbing", "Gym", "98 San Jacinto Blvd, Austin, TX", "(512) 555-0150", 4.7, 265, true, 30.2631, -97.7420, StatusNotContacted, 0},
	{"biz-009", "Mueller Neighborhood Vet", "Veterinarian", "1801 Aldrich St, Austin, TX", "(512) 555-0119", 4.8, 340, false, 30.2989, -97.7048, StatusEmailSent, 49 * time.Hour},
	{"biz-010", "South Austin Barbers", "Barber Shop", "3110 Manchaca Rd, Austin, TX", "(512) 555-0196", 4.6, 188, false, 30.2303, -97.7793, StatusNotInterested, 5 * 24 * time.Hour},
	{"biz-011", "Zilker Picture Framing", "Framing", "1014 Toomey Rd, Austin, TX", "(512) 555-0158", 4.3, 52, false, 30.2611, -97.7689, StatusNotContacted, 0},
	{"biz-012", "Red River Taqueria", "Restaurant", "611 Red River St, Austin, TX", "(512) 555-0109", 4.5, 689, true, 30.2665, -97.7378, StatusOpened, 31 * time.Hour},
}

type seedEvent struct {
	businessID string
	eventType  EventType
	age        time.Duration
}

// Historical engagement spread over the last week so the trend chart has
// something to draw at first load.
var seedEvents = []seedEvent{
	{"biz-002", EventSent, 6*24*time.Hour + 2*time.Hour},
	{"biz-009", EventSent, 6 * 24 * time.Hour},
	{"biz-005", EventSent, 5 * 24 * time.Hour},
	{"biz-003", EventSent, 5*24*time.Hour - 3*time.Hour},
	{"biz-010", EventSent, 5 * 24 * time.Hour},
	{"biz-007", EventSent, 4 * 24 * time.Hour},
	{"biz-012", EventSent, 4*24*time.Hour - 6*time.Hour},
	{"biz-005", EventDelivered, 5*24*time.Hour - time.Hour},
	{"biz-003", EventOpened, 3 * 24 * time.Hour},
	{"biz-012", EventOpened, 31 * time.Hour},
	{"biz-005", EventOpened, 2 * 24 * time.Hour},
	{"biz-007", EventOpened, 2*24*time.Hour - 4*time.Hour},
	{"biz-005", EventClicked, 40 * time.Hour},
	{"biz-005", EventReply, 3 * time.Hour},
	{"biz-007", EventReply, 90 * time.Minute},
	{"biz-010", EventReply, 5 * 24 * time.Hour},
}

var seedVariants = []EmailTemplateVariant{
	{
		ID:    "variant-a",
		Label: "Variant A — Direct",
		Content: "Hi {{owner_name | default:'there'}},\n\n" +
			"I came across {{business_name}} while researching {{category}} spots near {{address}} and noticed you don't have a website linked on your listing.\n\n" +
			"With a {{rating}}-star rating you're clearly doing something right, and a simple site could turn that reputation into more bookings.\n\n" +
			"Worth a quick chat this week?",
	},
	{
		ID:    "variant-b",
		Label: "Variant B — Social proof",
		Content: "Hi {{owner_name | default:'there'}},\n\n" +
			"{{business_name}} keeps coming up when people search for {{category}} — a {{rating}}-star rating is no accident.\n\n" +
			"We recently helped a business two blocks from {{address}} double their inbound calls with a one-page site. I'd love to show you how that would look for you.",
	},
	{
		ID:    "variant-c",
		Label: "Variant C — Question",
		Content: "Hi {{owner_name | default:'there'}},\n\n" +
			"Quick question about {{business_name}}: when a customer finds your {{category}} listing at {{address}} and wants to learn more, where do they go?\n\n" +
			"Right now the answer seems to be nowhere — happy to fix that in under a week.",
	},
}

// Seed builds the deterministic-ish initial dataset. Timestamps are
// offsets from the supplied reference time, so the relative shape of the
// data (trend buckets, feed ordering) is stable between runs.
func Seed(now time.Time) AppState {
	businesses := make([]Business, 0, len(seedBusinesses))

	for _, sb := range seedBusinesses {
		biz := Business{
			ID:           sb.id,
			Name:         sb.name,
			Category:     sb.category,
			Address:      sb.address,
			Phone:        sb.phone,
			Rating:       sb.rating,
			TotalReviews: sb.reviews,
			HasWebsite:   sb.hasWebsite,
			Location:     Location{Lat: sb.lat, Lng: sb.lng},
			Status:       sb.status,
		}

		if sb.lastTouch > 0 {
			t := now.Add(-sb.lastTouch).UTC()
			biz.LastInteraction = &t
		}

		businesses = append(businesses, biz)
	}

	events := make([]EmailEvent, 0, len(seedEvents))
	for i, se := range seedEvents {
		events = append(events, EmailEvent{
			ID:         EventID(i + 1),
			BusinessID: se.businessID,
			Type:       se.eventType,
			Timestamp:  now.Add(-se.age).UTC(),
		})
	}

	variants := make([]EmailTemplateVariant, len(seedVariants))
	copy(variants, seedVariants)

	return AppState{
		Businesses:  businesses,
		EmailEvents: events,
		SearchQuery: "",
		SearchSettings: SearchSettings{
			RadiusKm:     10,
			AutoDiscover: true,
			Categories:   []string{"Coffee Shop", "Restaurant", "Gym", "Dentist", "Florist"},
		},
		APICredentials: APICredentials{},
		EmailSettings: EmailSettings{
			DailyLimit:         50,
			ThrottleSeconds:    45,
			SendingWindowStart: "09:00",
			SendingWindowEnd:   "17:00",
		},
		EmailTemplates: EmailTemplates{
			Variants:        variants,
			ActiveVariantID: "variant-a",
		},
		Stats: ComputeStats(businesses),
	}
}

// EventID formats the synthetic id for the n-th engagement event.
// Ids come from a monotonic counter, not the log length, so they stay
// unique no matter how the log is consumed.
func EventID(n int) string {
	return "evt-" + strconv.Itoa(n)
}
