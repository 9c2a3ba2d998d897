// Package confirm implements the confirmation round-trip that guards every
// destructive or status-changing action. A handler asks the Registry for a
// prompt, the client shows it, and the action only runs once the client
// answers the prompt's token with a confirm decision.
package confirm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthcamp/dashboard/internal/platform/auth"
)

// ErrUnknownToken is returned when a token was never issued, has already
// been resolved, or has expired.
var ErrUnknownToken = errors.New("unknown or expired confirmation token")

// ErrNotOwner is returned when a session answers a prompt another session
// requested. The prompt stays pending.
var ErrNotOwner = errors.New("confirmation belongs to another session")

// DefaultTTL bounds how long a prompt stays answerable.
const DefaultTTL = 5 * time.Minute

// Severity selects how a client styles the prompt.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Decision is the client's answer to a prompt.
type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionCancel  Decision = "cancel"
)

// ParseDecision validates a decision received from a client.
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionConfirm, DecisionCancel:
		return d, nil
	}
	return "", fmt.Errorf("invalid decision %q: want %q or %q", s, DecisionConfirm, DecisionCancel)
}

// Outcome reports what happened to a resolved prompt.
type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeCancelled Outcome = "cancelled"
)

// Action is the deferred work a prompt guards.
type Action func(ctx context.Context) error

// Prompt is what the client renders as a confirmation dialog.
type Prompt struct {
	Token        string    `json:"token"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	ConfirmLabel string    `json:"confirm_label"`
	CancelLabel  string    `json:"cancel_label"`
	Severity     Severity  `json:"severity"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type pending struct {
	prompt Prompt
	owner  string
	action Action
}

// Registry holds prompts awaiting a decision.
type Registry struct {
	mu      sync.Mutex
	pending map[string]pending
	ttl     time.Duration
	now     func() time.Time
	logger  zerolog.Logger
}

// NewRegistry creates a registry whose prompts expire after ttl. A
// non-positive ttl selects DefaultTTL.
func NewRegistry(ttl time.Duration, logger zerolog.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		pending: make(map[string]pending),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger.With().Str("component", "confirm").Logger(),
	}
}

// Request registers action behind a new prompt owned by the session on ctx
// and returns the prompt with its token and expiry filled in. Empty labels
// and severity get defaults.
func (r *Registry) Request(ctx context.Context, p Prompt, action Action) Prompt {
	if p.ConfirmLabel == "" {
		p.ConfirmLabel = "Confirm"
	}
	if p.CancelLabel == "" {
		p.CancelLabel = "Cancel"
	}
	if p.Severity == "" {
		p.Severity = SeverityWarning
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)

	p.Token = uuid.New().String()
	p.ExpiresAt = now.Add(r.ttl)
	owner := auth.SubjectFromContext(ctx)
	r.pending[p.Token] = pending{prompt: p, owner: owner, action: action}

	r.logger.Debug().
		Str("token", p.Token).
		Str("owner", owner).
		Str("title", p.Title).
		Str("severity", string(p.Severity)).
		Msg("confirmation requested")

	return p
}

// Resolve answers the prompt identified by token on behalf of the session
// on ctx. A confirm decision runs the guarded action; cancel discards it.
// Either way the token is consumed, so an action runs at most once. Only the
// session that requested the prompt may answer it.
func (r *Registry) Resolve(ctx context.Context, token string, d Decision) (Outcome, error) {
	subject := auth.SubjectFromContext(ctx)

	r.mu.Lock()
	entry, ok := r.pending[token]
	now := r.now()
	if !ok || now.After(entry.prompt.ExpiresAt) {
		r.mu.Unlock()
		return "", ErrUnknownToken
	}
	if entry.owner != subject {
		r.mu.Unlock()
		r.logger.Warn().Str("token", token).Str("subject", subject).Msg("confirmation answered by another session")
		return "", ErrNotOwner
	}
	delete(r.pending, token)
	r.mu.Unlock()

	log := r.logger.With().Str("token", token).Str("title", entry.prompt.Title).Logger()

	if d != DecisionConfirm {
		log.Debug().Msg("confirmation cancelled")
		return OutcomeCancelled, nil
	}

	if entry.action != nil {
		if err := entry.action(ctx); err != nil {
			log.Error().Err(err).Msg("confirmed action failed")
			return "", fmt.Errorf("running confirmed action: %w", err)
		}
	}
	log.Info().Msg("confirmation accepted")
	return OutcomeConfirmed, nil
}

// Lookup returns the pending prompt for token if the session on ctx owns it.
func (r *Registry) Lookup(ctx context.Context, token string) (Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.pending[token]
	if !ok || r.now().After(entry.prompt.ExpiresAt) {
		return Prompt{}, ErrUnknownToken
	}
	if entry.owner != auth.SubjectFromContext(ctx) {
		return Prompt{}, ErrNotOwner
	}
	return entry.prompt, nil
}

// Pending returns the number of prompts awaiting a decision.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked(r.now())
	return len(r.pending)
}

func (r *Registry) pruneLocked(now time.Time) {
	for token, entry := range r.pending {
		if now.After(entry.prompt.ExpiresAt) {
			delete(r.pending, token)
		}
	}
}
