package user

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`(?i)^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldErrors maps a field name to its validation messages. An empty map
// means the input is valid.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidateCreate checks the required fields of a create request. It is a
// pure pre-check: no store access, no mutation of the DTO.
func ValidateCreate(dto *CreateUserDTO) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(dto.FirstName) == "" {
		errs.add("FirstName", "First name is required.")
	}
	if strings.TrimSpace(dto.LastName) == "" {
		errs.add("LastName", "Last name is required.")
	}

	email := strings.TrimSpace(dto.Email)
	if email == "" {
		errs.add("Email", "Email is required.")
	} else if !emailPattern.MatchString(email) {
		errs.add("Email", "Email format is invalid.")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateUpdate checks only the email, and only when it is provided and
// non-blank. Everything else is trusted post-trim by the update handler.
func ValidateUpdate(dto *UpdateUserDTO) FieldErrors {
	if dto.Email == nil {
		return nil
	}
	email := strings.TrimSpace(*dto.Email)
	if email == "" {
		return nil
	}
	if !emailPattern.MatchString(email) {
		errs := FieldErrors{}
		errs.add("Email", "Email format is invalid.")
		return errs
	}
	return nil
}
