package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/luo-one/organizer/internal/database/models"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// ParseDate parses a YYYY-MM-DD calendar date as local midnight
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, value)
	}
	return t, nil
}

// ParseDueDate parses a YYYY-MM-DDTHH:MM local date-time as submitted by
// datetime-local inputs
func ParseDueDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(models.DueDateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: due_date %q must be YYYY-MM-DDTHH:MM", ErrInvalidInput, value)
	}
	return t, nil
}

// parseClock normalizes an optional HH:MM value. Empty input yields nil.
func parseClock(field, value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(models.ClockLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q must be HH:MM", ErrInvalidInput, field, value)
	}
	normalized := t.Format(models.ClockLayout)
	return &normalized, nil
}

// dayBounds returns the half-open UTC range covering the local calendar day of date
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}
