package domain

import (
	"fmt"
	"strings"
)

// Violation kinds reported by Validate.
const (
	ViolationMissingRequired  = "missing-required"
	ViolationUnknownCriterion = "unknown-criterion"
	ViolationDuplicateEntry   = "duplicate-entry"
	ViolationWrongType        = "wrong-type"
	ViolationOutOfRange       = "out-of-range"
	ViolationUnknownOption    = "unknown-option"
)

// ValidationError describes one violation found in a response set.
type ValidationError struct {
	CriterionID string `json:"criterion_id"`
	Kind        string `json:"kind"`
	Message     string `json:"message"`
}

// ValidationResult is the outcome of checking a response set against a
// template. It collects every violation rather than stopping at the first,
// so a submitter sees the complete correction list in one pass.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Validate checks a response set against a template. It never fails for
// well-typed input; callers decide whether violations short-circuit scoring.
// Missing-required violations come first in template order, then entry
// violations in submission order.
func Validate(t Template, rs ResponseSet) ValidationResult {
	var errs []ValidationError

	for _, c := range t.Criteria {
		if !c.Required {
			continue
		}
		entry, ok := rs.Entry(c.ID)
		if !ok || !entry.HasValue(c.Kind) {
			errs = append(errs, ValidationError{
				CriterionID: c.ID,
				Kind:        ViolationMissingRequired,
				Message:     fmt.Sprintf("required criterion %q has no value", c.ID),
			})
		}
	}

	seen := make(map[string]bool, len(rs.Entries))
	for _, entry := range rs.Entries {
		if seen[entry.CriterionID] {
			errs = append(errs, ValidationError{
				CriterionID: entry.CriterionID,
				Kind:        ViolationDuplicateEntry,
				Message:     fmt.Sprintf("criterion %q answered more than once", entry.CriterionID),
			})
			continue
		}
		seen[entry.CriterionID] = true

		def, ok := t.Criterion(entry.CriterionID)
		if !ok {
			// Unknown ids are rejected, never silently dropped.
			errs = append(errs, ValidationError{
				CriterionID: entry.CriterionID,
				Kind:        ViolationUnknownCriterion,
				Message:     fmt.Sprintf("criterion %q is not in the template", entry.CriterionID),
			})
			continue
		}

		if err := checkEntryValue(def, entry); err != nil {
			errs = append(errs, *err)
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// checkEntryValue verifies that an entry's value matches its criterion's
// declared kind and constraints. A valueless entry is not a violation here;
// required coverage is checked separately.
func checkEntryValue(def CriterionDefinition, entry ResponseEntry) *ValidationError {
	if foreign := foreignValue(def.Kind, entry); foreign != "" {
		return &ValidationError{
			CriterionID: entry.CriterionID,
			Kind:        ViolationWrongType,
			Message:     fmt.Sprintf("criterion %q is %s but the entry carries a %s", def.ID, def.Kind, foreign),
		}
	}

	switch def.Kind {
	case KindOrdinalRating:
		if entry.Rating != nil && (*entry.Rating < def.RangeMin || *entry.Rating > def.RangeMax) {
			return &ValidationError{
				CriterionID: entry.CriterionID,
				Kind:        ViolationOutOfRange,
				Message:     fmt.Sprintf("rating %d for %q is outside %d..%d", *entry.Rating, def.ID, def.RangeMin, def.RangeMax),
			}
		}
	case KindCategorical:
		if entry.Option != nil && *entry.Option != "" && !containsOption(def.Options, *entry.Option) {
			return &ValidationError{
				CriterionID: entry.CriterionID,
				Kind:        ViolationUnknownOption,
				Message:     fmt.Sprintf("option %q for %q is not one of [%s]", *entry.Option, def.ID, strings.Join(def.Options, ", ")),
			}
		}
	}

	return nil
}

// foreignValue names the first value field that does not belong to the kind,
// or "" when the entry is clean. Notes are allowed alongside any kind.
func foreignValue(kind CriterionKind, entry ResponseEntry) string {
	if entry.Rating != nil && kind != KindOrdinalRating {
		return "rating"
	}
	if entry.Option != nil && kind != KindCategorical {
		return "categorical option"
	}
	if entry.Present != nil && kind != KindBooleanPresence {
		return "presence flag"
	}
	return ""
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
