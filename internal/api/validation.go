package api

import (
	"strings"
	"unicode/utf8"

	"github.com/lwaller/taskapi/internal/domain"
)

// Validation messages returned verbatim to clients. They are part of the API
// contract; do not reword without versioning.
const (
	msgTitleRequired      = "Title is required"
	msgTitleTooLong       = "Title must be 100 characters or less"
	msgDescriptionTooLong = "Description must be 500 characters or less"
	msgInvalidPriority    = "Priority must be low, medium, or high"
)

// validateTaskInput checks raw task-creation input against the field rules
// and returns every violation in rule order; an empty slice means valid.
// Rules are evaluated independently rather than short-circuited, except that
// the title length rule only applies once the title is known to be non-empty.
// All fields are trimmed before checking; priority is also lower-cased.
func validateTaskInput(title, description, priority string) []string {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	priority = strings.ToLower(strings.TrimSpace(priority))

	var violations []string

	if title == "" {
		violations = append(violations, msgTitleRequired)
	} else if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		violations = append(violations, msgTitleTooLong)
	}

	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		violations = append(violations, msgDescriptionTooLong)
	}

	if !domain.IsValidPriority(domain.Priority(priority)) {
		violations = append(violations, msgInvalidPriority)
	}

	return violations
}
