package account

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email address")

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is the identity key for parent accounts; stored lowercased so the
// unique constraint treats addresses case-insensitively.
type Email string

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if !emailRegex.MatchString(value) {
		return Email(""), ErrInvalidEmail
	}
	return Email(value), nil
}

func (e Email) Value() string {
	return string(e)
}

func (e Email) String() string {
	return string(e)
}
