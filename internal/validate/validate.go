// Package validate contains the pure field validators used by the
// registration flow. Validators are stateless and never return errors as
// exceptions; failed checks become user-visible messages.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-()]+$`)
)

// Required reports whether a value is non-empty after trimming.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidEmail does a lenient local@domain.tld shape check.
func ValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// ValidPhone accepts digits, spaces, dashes and parentheses, and requires at
// least 10 digits overall.
func ValidPhone(phone string) bool {
	if !phoneRe.MatchString(phone) {
		return false
	}
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 10
}

// ValidDate reports whether value parses as an ISO date that is not before
// today's local midnight.
func ValidDate(value string) bool {
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !date.Before(midnight)
}

// RegistrationInput is the raw registration form data.
type RegistrationInput struct {
	Name    string
	Email   string
	Phone   string
	EventID int
}

// RegistrationErrors holds at most one message per registration form field.
// The zero value means the input is valid.
type RegistrationErrors struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	EventID string `json:"eventId,omitempty"`
}

// Valid reports whether no field failed.
func (e RegistrationErrors) Valid() bool {
	return e == RegistrationErrors{}
}

// ValidateRegistration checks every registration field and returns the
// per-field messages. Phone is optional; it is only checked when present.
func ValidateRegistration(in RegistrationInput) RegistrationErrors {
	var errs RegistrationErrors

	switch {
	case !Required(in.Name):
		errs.Name = "Name is required"
	case len(strings.TrimSpace(in.Name)) < 2:
		errs.Name = "Name must be at least 2 characters"
	}

	switch {
	case !Required(in.Email):
		errs.Email = "Email is required"
	case !ValidEmail(in.Email):
		errs.Email = "Please enter a valid email address"
	}

	if in.Phone != "" && !ValidPhone(in.Phone) {
		errs.Phone = "Please enter a valid phone number"
	}

	if in.EventID <= 0 {
		errs.EventID = "Please select an event"
	}

	return errs
}

// EventErrors holds at most one message per event field. The zero value
// means the event data is valid.
type EventErrors struct {
	Name     string `json:"name,omitempty"`
	Date     string `json:"date,omitempty"`
	Location string `json:"location,omitempty"`
}

// Valid reports whether no field failed.
func (e EventErrors) Valid() bool {
	return e == EventErrors{}
}

// ValidateEvent checks event data for the catalog-facing path.
func ValidateEvent(name, date, location string) EventErrors {
	var errs EventErrors

	if !Required(name) {
		errs.Name = "Event name is required"
	}

	switch {
	case !Required(date):
		errs.Date = "Event date is required"
	case !ValidDate(date):
		errs.Date = "Event date must be today or in the future"
	}

	if !Required(location) {
		errs.Location = "Event location is required"
	}

	return errs
}
