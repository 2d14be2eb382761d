package domain

// EmailTemplateVariant is one candidate wording of an outreach email,
// selectable as the active variant for preview and send
type EmailTemplateVariant struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Content string `json:"content"`
}

// EmailTemplates holds the variant collection and the id of the single
// active variant. ActiveVariantID is not validated against the collection;
// readers fall back to the first variant when it does not match.
type EmailTemplates struct {
	Variants        []EmailTemplateVariant `json:"variants"`
	ActiveVariantID string                 `json:"active_variant_id"`
}

// ActiveVariant returns the active variant, falling back to the first
// variant when the active id matches nothing. Returns nil when the
// collection is empty.
func (t EmailTemplates) ActiveVariant() *EmailTemplateVariant {
	for i := range t.Variants {
		if t.Variants[i].ID == t.ActiveVariantID {
			return &t.Variants[i]
		}
	}

	if len(t.Variants) > 0 {
		return &t.Variants[0]
	}

	return nil
}

// Variant returns the variant with the given id, or nil
func (t EmailTemplates) Variant(id string) *EmailTemplateVariant {
	for i := range t.Variants {
		if t.Variants[i].ID == id {
			return &t.Variants[i]
		}
	}

	return nil
}

// Clone returns a deep copy of the template collection
func (t EmailTemplates) Clone() EmailTemplates {
	out := t
	out.Variants = make([]EmailTemplateVariant, len(t.Variants))
	copy(out.Variants, t.Variants)

	return out
}
