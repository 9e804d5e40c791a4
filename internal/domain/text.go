package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Default text length limits, overridable through configuration.
const (
	// DefaultQuestionTextMax is the default maximum question length in runes.
	DefaultQuestionTextMax = 1000

	// DefaultAnswerTextMax is the default maximum answer length in runes.
	DefaultAnswerTextMax = 10000
)

// ValidateText is the single source of truth for free-text input: both
// creation paths run through it before any persistence write.
//
// It trims leading/trailing whitespace, rejects an empty result, and
// rejects text longer than max runes. Length is measured in runes so
// multi-byte input is bounded by character count, not byte count. No
// other transformation is applied - accepted text round-trips exactly.
func ValidateText(field, raw string, max int) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", NewValidationError(field, "must not be empty")
	}

	if utf8.RuneCountInString(text) > max {
		return "", NewValidationError(field, fmt.Sprintf("must be at most %d characters", max))
	}

	return text, nil
}
