package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/store"
)

func TestRenderTemplate(t *testing.T) {
	biz := &domain.Business{
		Name:     "Lone Star Coffee Roasters",
		Category: "Coffee Shop",
		Address:  "1204 S Congress Ave, Austin, TX",
		Rating:   4.65,
	}

	tests := []struct {
		name     string
		content  string
		biz      *domain.Business
		expected string
	}{
		{
			name:     "business name token",
			content:  "About {{business_name}}.",
			biz:      biz,
			expected: "About Lone Star Coffee Roasters.",
		},
		{
			name:     "rating renders with one decimal",
			content:  "Rated {{rating}} stars",
			biz:      biz,
			expected: "Rated 4.7 stars",
		},
		{
			name:     "owner name falls back to there",
			content:  "Hi {{owner_name | default:'there'}}!",
			biz:      biz,
			expected: "Hi there!",
		},
		{
			name:     "newlines become break tags",
			content:  "line one\nline two",
			biz:      biz,
			expected: "line one<br/>line two",
		},
		{
			name:     "unknown tokens pass through",
			content:  "{{unknown_token}} stays",
			biz:      biz,
			expected: "{{unknown_token}} stays",
		},
		{
			name:     "nil business keeps tokens but converts newlines",
			content:  "Hi {{business_name}}\nbye",
			biz:      nil,
			expected: "Hi {{business_name}}<br/>bye",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderTemplate(tt.content, tt.biz))
		})
	}
}

func TestPreviewResolvesAllKnownTokens(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	s := store.New(store.WithClock(func() time.Time { return now }))
	v := New(s)

	s.Dispatch(store.SelectBusiness{BusinessID: "biz-001"})

	for _, variantID := range []string{"variant-a", "variant-b", "variant-c"} {
		s.Dispatch(store.SetActiveTemplateVariant{VariantID: variantID})

		preview := v.Preview()

		require.NotEmpty(t, preview)
		for _, token := range []string{
			"{{business_name}}",
			"{{category}}",
			"{{address}}",
			"{{rating}}",
			"{{owner_name | default:'there'}}",
		} {
			assert.NotContains(t, preview, token, "variant %s", variantID)
		}
	}
}

func TestPreviewText(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	s := store.New(store.WithClock(func() time.Time { return now }))
	v := New(s)

	s.Dispatch(store.SelectBusiness{BusinessID: "biz-001"})

	text, err := v.PreviewText()
	require.NoError(t, err)

	assert.NotContains(t, text, "<br/>")
	assert.Contains(t, text, "Lone Star Coffee Roasters")
	assert.True(t, strings.Contains(text, "\n"), "newlines restored in plain text")
}
