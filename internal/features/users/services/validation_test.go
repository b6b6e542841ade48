package users_services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidatePassword_WithPolicyViolations_ReturnsMatchingError(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected error
	}{
		{"too short", "Ab1", ErrPasswordTooShort},
		{"no uppercase", "lowercase123", ErrPasswordNoUppercase},
		{"no digit", "NoDigitsHere", ErrPasswordNoDigit},
		{"valid", "Valid1234", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func Test_NormalizeEmail_LowercasesAndRejectsMalformed(t *testing.T) {
	email, err := NormalizeEmail("  John.Doe@Example.COM ")
	assert.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", email)

	for _, invalid := range []string{"", "no-at-sign", "@example.com", "user@", "us er@example.com"} {
		_, err := NormalizeEmail(invalid)
		assert.ErrorIs(t, err, ErrInvalidEmail, invalid)
	}
}

func Test_NormalizeFullName_CollapsesWhitespace(t *testing.T) {
	fullName, err := NormalizeFullName("  Ana   María  López ")

	assert.NoError(t, err)
	assert.Equal(t, "Ana María López", fullName)
}
