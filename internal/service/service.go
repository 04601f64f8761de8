// Package service orchestrates the registration flow between the HTTP
// handlers, the field validators, the event catalog, and the session store.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Amuniare/eventease/internal/catalog"
	"github.com/Amuniare/eventease/internal/model"
	"github.com/Amuniare/eventease/internal/session"
	"github.com/Amuniare/eventease/internal/validate"
	"github.com/google/uuid"
)

// ErrAlreadyRegistered is returned when the session already holds a
// registration for the requested event. It is distinct from a validation
// failure so callers can surface a specific message.
var ErrAlreadyRegistered = errors.New("already registered for this event")

// ErrEventFull is returned when an event has no remaining capacity.
var ErrEventFull = errors.New("event is fully booked")

// ValidationError carries the per-field messages of a rejected submission.
type ValidationError struct {
	Fields validate.RegistrationErrors
}

func (e *ValidationError) Error() string {
	return "invalid registration input"
}

// RegistrationService implements the registration flow and the session
// actions the presentation layer issues.
type RegistrationService struct {
	catalog *catalog.Catalog
	session *session.Store
}

// New constructs a RegistrationService with its dependencies.
func New(cat *catalog.Catalog, store *session.Store) *RegistrationService {
	return &RegistrationService{catalog: cat, session: store}
}

// ListEvents returns all catalog events.
func (s *RegistrationService) ListEvents() []model.Event {
	return s.catalog.List()
}

// GetEvent returns a single event or catalog.ErrNotFound.
func (s *RegistrationService) GetEvent(id int) (model.Event, error) {
	return s.catalog.GetByID(id)
}

// Register runs the full registration flow: field validation, event lookup,
// duplicate check, capacity check, then the two store mutations in order
// (user profile first, then the event registration), exactly once.
func (s *RegistrationService) Register(ctx context.Context, eventID int, req model.RegisterRequest) (*model.RegistrationConfirmation, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	errs := validate.ValidateRegistration(validate.RegistrationInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		EventID: eventID,
	})
	if !errs.Valid() {
		return nil, &ValidationError{Fields: errs}
	}

	event, err := s.catalog.GetByID(eventID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("look up event: %w", err)
	}

	if s.session.IsRegisteredForEvent(eventID) {
		return nil, ErrAlreadyRegistered
	}
	if !event.IsAvailable() {
		return nil, ErrEventFull
	}

	s.session.RegisterUser(ctx, req.Name, req.Email, req.Phone)
	updated := s.session.RegisterForEvent(ctx, event.ID, event.Name)
	s.catalog.IncrementRegistrations(event.ID)

	registeredAt := updated.RegisteredEvents[len(updated.RegisteredEvents)-1].RegisteredAt
	return &model.RegistrationConfirmation{
		ConfirmationCode: uuid.New().String(),
		EventID:          event.ID,
		EventName:        event.Name,
		RegisteredAt:     registeredAt,
	}, nil
}

// MarkAttended records attendance for an event. An id the session has no
// registration for is a silent no-op, matching the store contract.
func (s *RegistrationService) MarkAttended(ctx context.Context, eventID int) model.Session {
	return s.session.MarkAttended(ctx, eventID)
}

// Unregister removes the registration for an event if present.
func (s *RegistrationService) Unregister(ctx context.Context, eventID int) model.Session {
	return s.session.UnregisterFromEvent(ctx, eventID)
}

// SessionSnapshot returns the current session state.
func (s *RegistrationService) SessionSnapshot() model.Session {
	return s.session.Session()
}

// Logout resets the session and removes its durable entry.
func (s *RegistrationService) Logout(ctx context.Context) model.Session {
	return s.session.ClearSession(ctx)
}
