package shared

import "regexp"

// emailRegex checks the local-part/domain/TLD shape of an address.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates the format of an email address. Used for both user
// accounts and customer contact addresses.
func ValidateEmail(email string) error {
	if len(email) > 200 {
		return NewValidationError("Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return NewValidationError("Invalid email format")
	}
	return nil
}
