// Package validate holds the field-level checks shared by every record
// service. Each function takes a single raw value and returns the normalized
// value, or an *Error describing why the input was rejected. The functions
// are pure and independent of each other.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted for date and date-time input.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// Error reports a field value that failed validation. It is always safe to
// show the reason to the operator.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// Errorf builds an *Error from a format string.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// Name accepts letters and whitespace only and returns the trimmed value.
func Name(s string) (string, error) {
	if !nameRe.MatchString(s) {
		return "", &Error{Reason: "Name can only contain letters and spaces"}
	}
	return strings.TrimSpace(s), nil
}

// Email accepts an empty value unchanged (email is optional everywhere) and
// otherwise requires a local@domain.tld shape with a top-level label of at
// least two letters.
func Email(s string) (string, error) {
	if s != "" && !emailRe.MatchString(s) {
		return "", &Error{Reason: "Invalid email format"}
	}
	return s, nil
}

// Phone requires 10 to 15 digits with an optional leading +.
func Phone(s string) (string, error) {
	if !phoneRe.MatchString(s) {
		return "", &Error{Reason: "Phone number must be 10-15 digits, optionally starting with +"}
	}
	return s, nil
}

// Date parses a YYYY-MM-DD calendar date.
func Date(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &Error{Reason: "Date must be in YYYY-MM-DD format"}
	}
	return t, nil
}

// DateTime parses a YYYY-MM-DD HH:MM timestamp (24-hour clock).
func DateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, &Error{Reason: "Datetime must be in YYYY-MM-DD HH:MM format"}
	}
	return t, nil
}

// Gender requires exactly Male, Female, or Other. No normalization.
func Gender(s string) (string, error) {
	switch s {
	case "Male", "Female", "Other":
		return s, nil
	}
	return "", &Error{Reason: "Gender must be one of: Male, Female, Other"}
}

// PositiveNumber parses v as a real number strictly greater than zero. The
// label names the field in the error message.
func PositiveNumber(v, label string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, Errorf("%s must be a valid number", label)
	}
	if !(n > 0) {
		return 0, Errorf("%s must be a positive number", label)
	}
	return n, nil
}
