package dates

import (
	"errors"
	"strings"
	"time"
)

const (
	ISODateLayout     = "2006-01-02"
	DisplayDateLayout = "02/01/2006"
)

var (
	ErrDateRequired    = errors.New("date is required")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidRange    = errors.New("start date must not be after end date")
	ErrIncompleteRange = errors.New("both startDate and endDate are required")
)

// ParseDate accepts a calendar date ("2024-03-01") or a full timestamp, and
// returns midnight UTC of that calendar day.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrDateRequired
	}

	formats := []string{
		ISODateLayout,
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// ParseDateRange parses an inclusive range. Both ends empty means the current
// month; one end alone is rejected.
func ParseDateRange(start string, end string, now time.Time) (time.Time, time.Time, error) {
	if strings.TrimSpace(start) == "" && strings.TrimSpace(end) == "" {
		monthStart, monthEnd := MonthRange(now)
		return monthStart, monthEnd, nil
	}

	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return time.Time{}, time.Time{}, ErrIncompleteRange
	}

	startDate, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endDate, err := ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	return startDate, endDate, nil
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func MonthRange(now time.Time) (time.Time, time.Time) {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return first, last
}

func FormatISO(t time.Time) string {
	return t.Format(ISODateLayout)
}

func FormatDisplay(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

func SameDay(a time.Time, b time.Time) bool {
	return FormatISO(a) == FormatISO(b)
}
