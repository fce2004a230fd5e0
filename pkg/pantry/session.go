package pantry

import (
	"log/slog"

	"github.com/google/uuid"
)

// Actor identifies who performs an operation.
type Actor interface {
	// UserID returns the id of the acting user, false when nobody is
	// logged in.
	UserID() (int64, bool)
}

// Session holds the logged-in user of one interactive session. It is
// passed explicitly to operations that need an actor.
type Session struct {
	id   string
	user *User
}

// NewSession creates a session with nobody logged in.
func NewSession() *Session {
	return &Session{}
}

// Login makes u the current user and starts a new session id.
func (s *Session) Login(u User) {
	s.user = &u
	s.id = uuid.NewString()
	s.Logger().Info("user logged in")
}

// Logout clears the current user.
func (s *Session) Logout() {
	if s.user == nil {
		return
	}
	s.Logger().Info("user logged out")
	s.user = nil
	s.id = ""
}

// Current returns the logged-in user.
func (s *Session) Current() (User, bool) {
	if s == nil || s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// UserID returns the id of the logged-in user.
func (s *Session) UserID() (int64, bool) {
	u, ok := s.Current()
	return u.ID, ok
}

// ID returns the session id used to correlate log lines. It is empty
// while nobody is logged in.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Logger returns the default logger annotated with the session.
func (s *Session) Logger() *slog.Logger {
	u, ok := s.Current()
	if !ok {
		return slog.Default()
	}
	return slog.Default().With("session", s.id, "user", u.UserName)
}

// UserActor is an Actor for a known user id, for callers without an
// interactive session, such as imports and tests.
type UserActor int64

// UserID implements Actor.
func (a UserActor) UserID() (int64, bool) {
	return int64(a), a > 0
}
