package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTemplate marks a malformed template. A template that fails
// construction must never be scored against.
var ErrInvalidTemplate = errors.New("invalid template")

// ValidationFailedError reports a response set rejected by validation.
// It is recoverable: the caller surfaces Errors to the submitter for
// correction and resubmission. No partial score accompanies it.
type ValidationFailedError struct {
	Errors []ValidationError
}

func (e *ValidationFailedError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Errors[0].Message)
	}
	return fmt.Sprintf("validation failed: %d violations", len(e.Errors))
}

// MissingRequired returns the ids of required criteria the submission left
// unanswered.
func (e *ValidationFailedError) MissingRequired() []string {
	var ids []string
	for _, v := range e.Errors {
		if v.Kind == ViolationMissingRequired {
			ids = append(ids, v.CriterionID)
		}
	}
	return ids
}
