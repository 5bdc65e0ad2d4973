package validator

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"cloudvault-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateSignup(r auth.Request) map[string]string {
	errs := validateCredentials(r)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(strings.TrimSpace(r.Name)) > 64 {
		errs["name"] = "name length must be at most 64 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateProfile(r auth.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(strings.TrimSpace(r.Name)) > 64 {
		errs["name"] = "name length must be at most 64 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.Request) map[string]string {
	errs := validateCredentials(r)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateCredentials(r auth.Request) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	return errs
}

// IsBlankName rejects renames to empty or whitespace-only names.
func IsBlankName(name string) bool {
	return strings.TrimSpace(name) == ""
}
