// Package model defines the core domain types for the EventEase
// registration service.
package model

import "time"

// Event is one entry of the read-only event catalog.
type Event struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"` // ISO-8601 date (YYYY-MM-DD)
	Location      string `json:"location"`
	Description   string `json:"description"`
	Capacity      int    `json:"capacity"`
	Category      string `json:"category"`
	Registrations int    `json:"registrations"`
}

// IsAvailable returns true while seats remain.
func (e *Event) IsAvailable() bool {
	return e.Registrations < e.Capacity
}

// SpotsRemaining returns the number of available seats.
func (e *Event) SpotsRemaining() int {
	return e.Capacity - e.Registrations
}

// UserProfile identifies the current user of a session. It is created by the
// first successful registration and overwritten whole by any later one.
type UserProfile struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Registration records one user's relationship to one event.
//
// EventName snapshots the catalog name at registration time; a later rename
// in the catalog does not retroactively update historical registrations.
type Registration struct {
	EventID      int        `json:"eventId"`
	EventName    string     `json:"eventName"`
	RegisteredAt time.Time  `json:"registeredAt"`
	Attended     bool       `json:"attended"`
	AttendedAt   *time.Time `json:"attendedAt,omitempty"`
}

// Session is the single unit of persistence: the current user (if any) and
// their event registrations.
type Session struct {
	User             *UserProfile   `json:"user"`
	RegisteredEvents []Registration `json:"registeredEvents"`
	LastActivity     *time.Time     `json:"lastActivity"`
}

// NewSession returns the empty initial session value.
func NewSession() Session {
	return Session{RegisteredEvents: []Registration{}}
}

// Clone returns a deep copy so callers can read a snapshot without aliasing
// the store's internal state.
func (s Session) Clone() Session {
	out := s
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	if s.LastActivity != nil {
		at := *s.LastActivity
		out.LastActivity = &at
	}
	out.RegisteredEvents = make([]Registration, len(s.RegisteredEvents))
	for i, reg := range s.RegisteredEvents {
		if reg.AttendedAt != nil {
			at := *reg.AttendedAt
			reg.AttendedAt = &at
		}
		out.RegisteredEvents[i] = reg
	}
	return out
}

// RegisterRequest is the payload for registering for an event.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RegistrationConfirmation summarises the outcome of a successful
// registration attempt.
type RegistrationConfirmation struct {
	ConfirmationCode string    `json:"confirmation_code"`
	EventID          int       `json:"event_id"`
	EventName        string    `json:"event_name"`
	RegisteredAt     time.Time `json:"registered_at"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
