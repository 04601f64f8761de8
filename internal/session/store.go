// Package session implements the authoritative in-memory session state and
// keeps it durable across restarts within the same storage scope.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Amuniare/eventease/internal/model"
	"github.com/Amuniare/eventease/internal/storage"
)

// Storage is the durable entry the session is mirrored into.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

// Store holds the current session and persists it after every mutation.
//
// The in-memory state is always the source of truth: a failed write is
// logged and the session lives on unchanged in memory for the rest of the
// process lifetime.
type Store struct {
	mu      sync.Mutex
	storage Storage
	log     *slog.Logger
	now     func() time.Time
	session model.Session
}

// New constructs a Store by loading the stored session. An absent entry, an
// unparsable entry, or a read failure all fall back to the empty initial
// session; none of them is surfaced to the caller.
func New(ctx context.Context, st Storage, log *slog.Logger) *Store {
	s := &Store{
		storage: st,
		log:     log,
		now:     time.Now,
		session: model.NewSession(),
	}

	data, err := st.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNoSession):
		// First run, or a cleared session.
	case err != nil:
		log.Warn("session load failed, starting empty", "error", err)
	default:
		var loaded model.Session
		if err := json.Unmarshal(data, &loaded); err != nil {
			log.Warn("stored session unparsable, starting empty", "error", err)
		} else {
			if loaded.RegisteredEvents == nil {
				loaded.RegisteredEvents = []model.Registration{}
			}
			s.session = loaded
		}
	}
	return s
}

// Session returns a snapshot of the current session.
func (s *Store) Session() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// RegisterUser sets the session user, replacing any previous profile whole.
func (s *Store) RegisterUser(ctx context.Context, name, email, phone string) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.session.User = &model.UserProfile{
		Name:         name,
		Email:        email,
		Phone:        phone,
		RegisteredAt: now,
	}
	s.session.LastActivity = &now
	s.persist(ctx)
	return s.session.Clone()
}

// RegisterForEvent appends a registration for eventID unless one already
// exists, in which case the call is a no-op and nothing is persisted.
func (s *Store) RegisterForEvent(ctx context.Context, eventID int, eventName string) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registered(eventID) {
		return s.session.Clone()
	}

	now := s.now()
	s.session.RegisteredEvents = append(s.session.RegisteredEvents, model.Registration{
		EventID:      eventID,
		EventName:    eventName,
		RegisteredAt: now,
		Attended:     false,
	})
	s.session.LastActivity = &now
	s.persist(ctx)
	return s.session.Clone()
}

// MarkAttended marks the registration for eventID as attended. An unknown id
// is a silent no-op for the registration list, but lastActivity is stamped
// either way.
func (s *Store) MarkAttended(ctx context.Context, eventID int) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.session.RegisteredEvents {
		if s.session.RegisteredEvents[i].EventID == eventID {
			at := now
			s.session.RegisteredEvents[i].Attended = true
			s.session.RegisteredEvents[i].AttendedAt = &at
		}
	}
	s.session.LastActivity = &now
	s.persist(ctx)
	return s.session.Clone()
}

// UnregisterFromEvent removes the registration for eventID if present.
// Attendance does not block removal.
func (s *Store) UnregisterFromEvent(ctx context.Context, eventID int) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.session.RegisteredEvents[:0]
	for _, reg := range s.session.RegisteredEvents {
		if reg.EventID != eventID {
			kept = append(kept, reg)
		}
	}
	s.session.RegisteredEvents = kept

	now := s.now()
	s.session.LastActivity = &now
	s.persist(ctx)
	return s.session.Clone()
}

// IsRegisteredForEvent reports whether a registration for eventID exists.
func (s *Store) IsRegisteredForEvent(eventID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registered(eventID)
}

// RegistrationCount returns the number of registrations in the session.
func (s *Store) RegistrationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.session.RegisteredEvents)
}

// ClearSession resets the session to its empty initial value and removes the
// durable entry entirely, so the next load behaves like a first run.
func (s *Store) ClearSession(ctx context.Context) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.NewSession()
	if err := s.storage.Delete(ctx); err != nil {
		s.log.Warn("session entry not removed", "error", err)
	}
	return s.session.Clone()
}

// Flush writes the current session out; called at process exit.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(s.session)
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, data)
}

// registered requires s.mu to be held.
func (s *Store) registered(eventID int) bool {
	for _, reg := range s.session.RegisteredEvents {
		if reg.EventID == eventID {
			return true
		}
	}
	return false
}

// persist mirrors the in-memory session into durable storage. Requires s.mu
// to be held. A write failure never rolls back the in-memory mutation.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.session)
	if err != nil {
		s.log.Error("session not serializable", "error", err)
		return
	}
	if err := s.storage.Save(ctx, data); err != nil {
		s.log.Warn("session write failed, in-memory state remains authoritative", "error", err)
	}
}
