package validator

import (
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var stateCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// IsValidStateCode reports whether s normalizes to a two-letter US state
// code shape. It does not check membership in the wage-rule table; unknown
// states fall back to defaults downstream.
func IsValidStateCode(s string) bool {
	return stateCodeRegex.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}
