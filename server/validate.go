package server

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minOpponentLen = 1
	maxOpponentLen = 60
)

// ValidationErrors is the 400 response body for invalid fight submissions.
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

// validateOpponent trims the submitted value and checks its length.
// Returns the trimmed value and an empty issue string when valid.
func validateOpponent(field, value string) (string, string) {
	trimmed := strings.TrimSpace(value)

	if utf8.RuneCountInString(trimmed) < minOpponentLen {
		return "", fmt.Sprintf("%s is required", field)
	}
	if utf8.RuneCountInString(trimmed) > maxOpponentLen {
		return "", fmt.Sprintf("%s must be at most %d characters", field, maxOpponentLen)
	}

	return trimmed, ""
}

// validateOpponents validates both fields, collecting every issue so the
// client can report them all at once.
func validateOpponents(opponent1, opponent2 string) (string, string, []string) {
	var issues []string

	o1, issue := validateOpponent("opponent1", opponent1)
	if issue != "" {
		issues = append(issues, issue)
	}

	o2, issue := validateOpponent("opponent2", opponent2)
	if issue != "" {
		issues = append(issues, issue)
	}

	return o1, o2, issues
}
