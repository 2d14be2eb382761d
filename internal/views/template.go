package views

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/leadscout/outreach-dashboard/internal/domain"
)

// The five known placeholder tokens. Anything else in {{...}} form is
// left verbatim in the output.
const (
	tokenBusinessName = "{{business_name}}"
	tokenCategory     = "{{category}}"
	tokenAddress      = "{{address}}"
	tokenRating       = "{{rating}}"
	tokenOwnerName    = "{{owner_name | default:'there'}}"

	ownerNameFallback = "there"
)

// RenderTemplate substitutes the known placeholder tokens with values
// from the business and converts newlines for the HTML preview surface.
// With no business the raw template is returned (newlines converted only).
func RenderTemplate(content string, biz *domain.Business) string {
	if biz == nil {
		return strings.ReplaceAll(content, "\n", "<br/>")
	}

	replacer := strings.NewReplacer(
		tokenBusinessName, biz.Name,
		tokenCategory, biz.Category,
		tokenAddress, biz.Address,
		tokenRating, fmt.Sprintf("%.1f", biz.Rating),
		tokenOwnerName, ownerNameFallback,
	)

	return strings.ReplaceAll(replacer.Replace(content), "\n", "<br/>")
}

// Preview renders the active template variant against the currently
// selected business
func (v *Views) Preview() string {
	snap := v.Snapshot()

	variant := snap.EmailTemplates.ActiveVariant()
	if variant == nil {
		return ""
	}

	return RenderTemplate(variant.Content, v.CurrentBusiness())
}

// PreviewText renders the preview and strips the markup, for consumers
// that want the plain-text wording of the outreach email
func (v *Views) PreviewText() (string, error) {
	html := strings.ReplaceAll(v.Preview(), "<br/>", "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse preview markup: %w", err)
	}

	return doc.Text(), nil
}
