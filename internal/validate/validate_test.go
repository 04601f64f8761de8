package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.True(t, Required("Ana"))
	assert.True(t, Required("  x  "))
	assert.False(t, Required(""))
	assert.False(t, Required("   "))
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@x.com", true},
		{"first.last@example.co.uk", true},
		{"  ana@x.com  ", true},
		{"", false},
		{"plainaddress", false},
		{"missing@tld", false},
		{"two@@x.com", false},
		{"spaces in@x.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"5550101234", true},
		{"(555) 010-1234", true},
		{"555-010-1234", true},
		{"555-0101", false},        // fewer than 10 digits
		{"555O101234x", false},     // disallowed characters
		{"+1 555 010 1234", false}, // plus sign not in the allowed set
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestValidDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	past := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	assert.True(t, ValidDate(today), "today counts as valid")
	assert.True(t, ValidDate(future))
	assert.False(t, ValidDate(past))
	assert.False(t, ValidDate("not-a-date"))
	assert.False(t, ValidDate(""))
}

func TestValidateRegistration(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		errs := ValidateRegistration(RegistrationInput{
			Name:    "Ana",
			Email:   "ana@x.com",
			Phone:   "555-010-1234",
			EventID: 3,
		})
		assert.True(t, errs.Valid())
	})

	t.Run("phone is optional", func(t *testing.T) {
		errs := ValidateRegistration(RegistrationInput{
			Name:    "Ana",
			Email:   "ana@x.com",
			EventID: 3,
		})
		assert.True(t, errs.Valid())
	})

	t.Run("every field reported", func(t *testing.T) {
		errs := ValidateRegistration(RegistrationInput{Phone: "123"})
		assert.False(t, errs.Valid())
		assert.Equal(t, "Name is required", errs.Name)
		assert.Equal(t, "Email is required", errs.Email)
		assert.Equal(t, "Please enter a valid phone number", errs.Phone)
		assert.Equal(t, "Please select an event", errs.EventID)
	})

	t.Run("short name", func(t *testing.T) {
		errs := ValidateRegistration(RegistrationInput{
			Name:    " a ",
			Email:   "ana@x.com",
			EventID: 3,
		})
		assert.Equal(t, "Name must be at least 2 characters", errs.Name)
	})

	t.Run("bad email shape", func(t *testing.T) {
		errs := ValidateRegistration(RegistrationInput{
			Name:    "Ana",
			Email:   "not-an-email",
			EventID: 3,
		})
		assert.Equal(t, "Please enter a valid email address", errs.Email)
	})
}

func TestValidateEvent(t *testing.T) {
	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	errs := ValidateEvent("Tech Meetup", future, "Austin, TX")
	assert.True(t, errs.Valid())

	errs = ValidateEvent("", "", "")
	assert.Equal(t, "Event name is required", errs.Name)
	assert.Equal(t, "Event date is required", errs.Date)
	assert.Equal(t, "Event location is required", errs.Location)

	errs = ValidateEvent("Tech Meetup", "2001-01-01", "Austin, TX")
	assert.Equal(t, "Event date must be today or in the future", errs.Date)
}
