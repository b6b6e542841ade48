package jobs_services

import (
	"strings"
	"time"

	jobs_enums "jobtracker/internal/features/jobs/enums"
	"jobtracker/internal/util/app_errors"
	"jobtracker/internal/util/dates"

	"github.com/shopspring/decimal"
)

const maxTextLength = 2000

var (
	ErrDateRequired       = app_errors.New(app_errors.ErrValidation, "date is required")
	ErrInvalidDate        = app_errors.New(app_errors.ErrValidation, "date must be in YYYY-MM-DD format")
	ErrHoursNotPositive   = app_errors.New(app_errors.ErrValidation, "hours worked must be greater than 0")
	ErrNegativeCost       = app_errors.New(app_errors.ErrValidation, "cost spent must be greater than or equal to 0")
	ErrNegativeAmount     = app_errors.New(app_errors.ErrValidation, "amount to charge must be greater than or equal to 0")
	ErrInvalidStatus      = app_errors.New(app_errors.ErrValidation, "invalid job status")
	ErrLocationTooLong    = app_errors.New(app_errors.ErrValidation, "location must be at most 2000 characters")
	ErrDescriptionTooLong = app_errors.New(app_errors.ErrValidation, "description must be at most 2000 characters")
)

func ParseJobDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, ErrDateRequired
	}

	date, err := dates.ParseDate(value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return date, nil
}

func ValidateHours(hours decimal.Decimal) error {
	if !hours.IsPositive() {
		return ErrHoursNotPositive
	}

	return nil
}

func ValidateCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return ErrNegativeCost
	}

	return nil
}

func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	return nil
}

// NormalizeStatus defaults an empty status to pending.
func NormalizeStatus(status jobs_enums.JobStatus) (jobs_enums.JobStatus, error) {
	if status == "" {
		return jobs_enums.JobStatusPending, nil
	}

	if !status.IsValid() {
		return "", ErrInvalidStatus
	}

	return status, nil
}

func NormalizeText(value string, tooLong error) (string, error) {
	value = strings.TrimSpace(value)
	if len([]rune(value)) > maxTextLength {
		return "", tooLong
	}

	return value, nil
}
