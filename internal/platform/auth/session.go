// Package auth models the dashboard session lifecycle and the guards that
// protect the admin and doctor portals.
package auth

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Portal names one of the protected route trees.
type Portal string

const (
	PortalAdmin  Portal = "admin"
	PortalDoctor Portal = "doctor"
)

// ParsePortal validates a portal name.
func ParsePortal(s string) (Portal, error) {
	switch p := Portal(strings.ToLower(strings.TrimSpace(s))); p {
	case PortalAdmin, PortalDoctor:
		return p, nil
	}
	return "", fmt.Errorf("unknown portal %q", s)
}

// State is the lifecycle position of a session.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
	StateExpired       State = "expired"
)

// Session is the explicit replacement for the per-portal "logged in" flag.
// The zero value is an anonymous session.
type Session struct {
	ID        string    `json:"id,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Portal    Portal    `json:"portal,omitempty"`
	Roles     []string  `json:"roles,omitempty"`
	IssuedAt  time.Time `json:"issued_at,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// Dev marks the permissive development session, which may enter any portal.
	Dev bool `json:"dev,omitempty"`
}

// State reports where s stands at now.
func (s Session) State(now time.Time) State {
	if s.Subject == "" {
		return StateAnonymous
	}
	if !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt) {
		return StateExpired
	}
	return StateAuthenticated
}

func (s Session) HasRole(role string) bool {
	return slices.Contains(s.Roles, role)
}

// DisplayName is the name recorded against actions taken in this session.
func (s Session) DisplayName() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Email != "":
		return s.Email
	case s.Subject != "":
		return s.Subject
	}
	return "anonymous"
}

type contextKey string

const sessionKey contextKey = "session"

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session stored on ctx, or an anonymous one.
func SessionFromContext(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey).(Session)
	return s
}

// SubjectFromContext is shorthand for SessionFromContext(ctx).Subject.
func SubjectFromContext(ctx context.Context) string {
	return SessionFromContext(ctx).Subject
}

// ActorFromContext is the display name of the session on ctx.
func ActorFromContext(ctx context.Context) string {
	return SessionFromContext(ctx).DisplayName()
}
