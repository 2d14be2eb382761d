package domain

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusinessStatusNext(t *testing.T) {
	tests := []struct {
		name     string
		status   BusinessStatus
		expected BusinessStatus
	}{
		{"not contacted advances to email sent", StatusNotContacted, StatusEmailSent},
		{"email sent advances to opened", StatusEmailSent, StatusOpened},
		{"opened advances to replied", StatusOpened, StatusReplied},
		{"replied advances to interested", StatusReplied, StatusInterested},
		{"interested advances to not interested", StatusInterested, StatusNotInterested},
		{"last rank stays put", StatusNotInterested, StatusNotInterested},
		{"unknown status advances from rank zero", BusinessStatus("bogus"), StatusEmailSent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Next())
		})
	}
}

func TestBusinessStatusRank(t *testing.T) {
	for i, status := range StatusPriority {
		assert.Equal(t, i, status.Rank())
	}

	// Unknown statuses sort with untouched prospects
	assert.Equal(t, 0, BusinessStatus("bogus").Rank())
}

func TestBusinessStatusValid(t *testing.T) {
	for _, status := range StatusPriority {
		assert.True(t, status.Valid())
	}

	assert.False(t, BusinessStatus("bogus").Valid())
	assert.False(t, BusinessStatus("").Valid())
}

func TestEventTypeForStatus(t *testing.T) {
	tests := []struct {
		status   BusinessStatus
		expected EventType
	}{
		{StatusEmailSent, EventSent},
		{StatusOpened, EventOpened},
		{StatusReplied, EventReply},
		{StatusInterested, EventReply},
		{StatusNotInterested, EventReply},
		{StatusNotContacted, EventSent},
		{BusinessStatus("bogus"), EventSent},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, EventTypeForStatus(tt.status))
		})
	}
}

func TestBusinessCloneIsolatesLastInteraction(t *testing.T) {
	touch := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orig := Business{ID: "biz-1", Status: StatusOpened, LastInteraction: &touch}

	clone := orig.Clone()
	*clone.LastInteraction = clone.LastInteraction.Add(time.Hour)

	assert.Equal(t, touch, *orig.LastInteraction)
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		statuses []BusinessStatus
		expected OutreachStats
	}{
		{
			name:     "empty collection",
			statuses: nil,
			expected: OutreachStats{},
		},
		{
			name:     "nobody contacted",
			statuses: []BusinessStatus{StatusNotContacted, StatusNotContacted},
			expected: OutreachStats{TotalAnalyzed: 2},
		},
		{
			name:     "mixed funnel",
			statuses: []BusinessStatus{StatusNotContacted, StatusEmailSent, StatusOpened, StatusReplied, StatusInterested, StatusNotInterested},
			expected: OutreachStats{TotalAnalyzed: 6, EmailsSent: 5, ResponseRate: 33},
		},
		{
			name:     "everyone responded",
			statuses: []BusinessStatus{StatusReplied, StatusInterested},
			expected: OutreachStats{TotalAnalyzed: 2, EmailsSent: 2, ResponseRate: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			businesses := make([]Business, len(tt.statuses))
			for i, status := range tt.statuses {
				businesses[i] = Business{ID: "biz-" + strconv.Itoa(i), Status: status}
			}

			assert.Equal(t, tt.expected, ComputeStats(businesses))
		})
	}
}

func TestSeedIsInternallyConsistent(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	state := Seed(now)

	assert.Len(t, state.Businesses, 12)
	assert.NotEmpty(t, state.EmailEvents)
	assert.Equal(t, ComputeStats(state.Businesses), state.Stats)

	// Every event references a seeded business
	for _, event := range state.EmailEvents {
		assert.NotNil(t, FindBusiness(state.Businesses, event.BusinessID), "event %s references unknown business", event.ID)
	}

	// Active template variant resolves
	assert.NotNil(t, state.EmailTemplates.ActiveVariant())

	// Untouched prospects have no interaction timestamp
	for _, biz := range state.Businesses {
		if biz.Status == StatusNotContacted {
			assert.Nil(t, biz.LastInteraction, "business %s", biz.ID)
		} else {
			assert.NotNil(t, biz.LastInteraction, "business %s", biz.ID)
		}
	}
}

func TestActiveVariantFallback(t *testing.T) {
	templates := EmailTemplates{
		Variants: []EmailTemplateVariant{
			{ID: "variant-a", Content: "a"},
			{ID: "variant-b", Content: "b"},
		},
		ActiveVariantID: "variant-missing",
	}

	active := templates.ActiveVariant()
	assert.NotNil(t, active)
	assert.Equal(t, "variant-a", active.ID)

	empty := EmailTemplates{}
	assert.Nil(t, empty.ActiveVariant())
}
