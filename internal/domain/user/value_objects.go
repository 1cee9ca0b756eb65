package user

import (
	"regexp"
	"strings"

	"hotel-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Wrap(errs.ErrValidation, "invalid email format")
	ErrInvalidUsername = errs.Wrap(errs.ErrValidation, "username must be 3-50 letters, digits, dots, dashes or underscores")
	ErrInvalidRole     = errs.Wrap(errs.ErrValidation, "invalid role")
	ErrPasswordTooWeak = errs.Wrap(errs.ErrValidation, "password must be at least 8 characters long")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,50}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
