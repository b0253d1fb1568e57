package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength    = 256
	MaxContactLength = 256
	MaxDetailsLength = 4000
)

type Submission struct {
	Name    string
	Contact string
	Details string
}

// ValidationError lists every field that failed.
type ValidationError struct {
	Missing []string
	TooLong []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.TooLong) > 0 {
		parts = append(parts, fmt.Sprintf("too long %s", strings.Join(e.TooLong, ", ")))
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

func (e *ValidationError) HasMissing() bool {
	return len(e.Missing) > 0
}

// OrderSubmission trims the submitted values and checks them.
// Whitespace-only name or contact counts as missing.
func OrderSubmission(name, contact, details string) (Submission, error) {
	s := Submission{
		Name:    strings.TrimSpace(name),
		Contact: strings.TrimSpace(contact),
		Details: strings.TrimSpace(details),
	}

	verr := &ValidationError{}
	if s.Name == "" {
		verr.Missing = append(verr.Missing, "name")
	}
	if s.Contact == "" {
		verr.Missing = append(verr.Missing, "contact")
	}
	if utf8.RuneCountInString(s.Name) > MaxNameLength {
		verr.TooLong = append(verr.TooLong, "name")
	}
	if utf8.RuneCountInString(s.Contact) > MaxContactLength {
		verr.TooLong = append(verr.TooLong, "contact")
	}
	if utf8.RuneCountInString(s.Details) > MaxDetailsLength {
		verr.TooLong = append(verr.TooLong, "details")
	}

	if len(verr.Missing) > 0 || len(verr.TooLong) > 0 {
		return Submission{}, verr
	}
	return s, nil
}
