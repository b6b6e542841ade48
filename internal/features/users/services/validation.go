package users_services

import (
	"strings"
	"unicode"

	"jobtracker/internal/util/app_errors"
)

const minPasswordLength = 8

var (
	ErrPasswordTooShort    = app_errors.New(app_errors.ErrValidation, "password must be at least 8 characters long")
	ErrPasswordNoUppercase = app_errors.New(app_errors.ErrValidation, "password must contain an uppercase letter")
	ErrPasswordNoDigit     = app_errors.New(app_errors.ErrValidation, "password must contain a digit")
	ErrInvalidEmail        = app_errors.New(app_errors.ErrValidation, "email is invalid")
	ErrFullNameTooLong     = app_errors.New(app_errors.ErrValidation, "full name must be at most 200 characters")
)

func ValidatePassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrPasswordTooShort
	}

	hasUpper := false
	hasDigit := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}

	if !hasUpper {
		return ErrPasswordNoUppercase
	}

	if !hasDigit {
		return ErrPasswordNoDigit
	}

	return nil
}

func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return "", ErrInvalidEmail
	}

	return email, nil
}

func NormalizeFullName(fullName string) (string, error) {
	fullName = strings.Join(strings.Fields(fullName), " ")
	if len([]rune(fullName)) > 200 {
		return "", ErrFullNameTooLong
	}

	return fullName, nil
}
