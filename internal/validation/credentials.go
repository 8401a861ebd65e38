package validation

import (
	"errors"
	"strings"
)

var (
	ErrCredentialsRequired = errors.New("username and password required")
)

// ValidateCredentials checks that both username and password are present.
// The username is expected pre-trimmed by the caller; the password only
// needs to contain something other than whitespace, it is hashed as-is.
func ValidateCredentials(username, password string) error {
	if username == "" || strings.TrimSpace(password) == "" {
		return ErrCredentialsRequired
	}
	return nil
}
