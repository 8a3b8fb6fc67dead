package forms

import (
	"strconv"
	"strings"
	"time"

	apperr "assessctl/internal/errors"
	"assessctl/internal/models"
)

// Required returns a validator rejecting blank input for field.
func Required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return apperr.InvalidInput(field, "required")
		}
		return nil
	}
}

// ParseInt parses a whole number.
func ParseInt(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperr.InvalidInput(field, "required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.InvalidInput(field, "expected an integer value").WithDetail("input", s)
	}
	return n, nil
}

// ParseCreditHours parses a non-negative whole number of credit hours.
func ParseCreditHours(s string) (int, error) {
	n, err := ParseInt("credit hours", s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, apperr.InvalidInput("credit hours", "must not be negative")
	}
	return n, nil
}

// ParseScore parses a decimal score within [0, limit].
func ParseScore(field, s string, limit float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperr.InvalidInput(field, "required")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperr.InvalidInput(field, "expected a decimal number").WithDetail("input", s)
	}
	if f < 0 || f > limit {
		return 0, apperr.InvalidInput(field, "must be between 0 and "+strconv.FormatFloat(limit, 'f', -1, 64))
	}
	return f, nil
}

// ParseDate parses an optional yyyy-mm-dd date. Blank input gives the zero time.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, apperr.InvalidInput(field, "invalid date format, expected yyyy-mm-dd")
	}
	return t, nil
}

func discard[T any](f func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := f(s)
		return err
	}
}
