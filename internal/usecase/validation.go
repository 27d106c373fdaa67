package usecase

import (
	"regexp"
	"strings"
)

// Same loose local@domain.tld shape the intake form enforces client-side.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSubmitLeadInput checks the rules in order and stops at the first
// violation; it never touches a collaborator.
func ValidateSubmitLeadInput(input SubmitLeadInput) *ValidationError {
	required := []struct {
		field string
		value string
	}{
		{"companyName", input.CompanyName},
		{"city", input.City},
		{"seats", string(input.Seats)},
		{"contactName", input.ContactName},
		{"email", input.Email},
		{"phone", input.Phone},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Message: "is required"}
		}
	}

	if !emailRegex.MatchString(input.Email) {
		return &ValidationError{Field: "email", Message: "has an invalid format"}
	}

	return nil
}
