package domain

import "time"

// ResponseEntry is the submitted answer for one criterion. The value field
// matching the criterion's kind should be set; pointer types distinguish
// "not answered" from zero values.
type ResponseEntry struct {
	CriterionID string  `yaml:"criterion_id"       json:"criterion_id"`
	Rating      *int    `yaml:"rating,omitempty"   json:"rating,omitempty"`
	Option      *string `yaml:"option,omitempty"   json:"option,omitempty"`
	Present     *bool   `yaml:"present,omitempty"  json:"present,omitempty"`
	Note        string  `yaml:"note,omitempty"     json:"note,omitempty"`
}

// HasValue reports whether the entry carries a non-empty value for the
// given kind.
func (e ResponseEntry) HasValue(kind CriterionKind) bool {
	switch kind {
	case KindOrdinalRating:
		return e.Rating != nil
	case KindCategorical:
		return e.Option != nil && *e.Option != ""
	case KindBooleanPresence:
		return e.Present != nil
	case KindFreeTextNote:
		return e.Note != ""
	default:
		return false
	}
}

// ResponseSet is one location visit's submitted answers. LocationID and
// SubmittedAt are used only by the aggregation engine, never by the scorer.
type ResponseSet struct {
	LocationID  string          `yaml:"location_id"            json:"location_id"`
	SubmittedAt time.Time       `yaml:"submitted_at,omitempty" json:"submitted_at,omitzero"`
	Entries     []ResponseEntry `yaml:"entries"                json:"entries"`
}

// Entry returns the first entry for a criterion id.
func (rs ResponseSet) Entry(id string) (ResponseEntry, bool) {
	for _, e := range rs.Entries {
		if e.CriterionID == id {
			return e, true
		}
	}
	return ResponseEntry{}, false
}
