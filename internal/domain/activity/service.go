package activity

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthcamp/dashboard/internal/platform/auth"
	"github.com/healthcamp/dashboard/internal/platform/store"
	"github.com/healthcamp/dashboard/internal/platform/websocket"
)

// MutationCounter counts store mutations by entity and action.
type MutationCounter interface {
	RecordMutation(entity, action string)
}

// Service owns the activity log. Every other domain reports its mutations
// here.
type Service struct {
	entries   *store.Store[Entry]
	publisher websocket.EventPublisher
	counter   MutationCounter
	now       func() time.Time
	logger    zerolog.Logger
}

// NewService creates the log. publisher and counter may be nil.
func NewService(publisher websocket.EventPublisher, counter MutationCounter, logger zerolog.Logger) *Service {
	return &Service{
		entries:   store.New(Seed()),
		publisher: publisher,
		counter:   counter,
		now:       time.Now,
		logger:    logger.With().Str("component", "activity").Logger(),
	}
}

// Record appends an entry for m, attributed to the session on ctx, and fans
// it out to websocket subscribers.
func (s *Service) Record(ctx context.Context, m Mutation) Entry {
	e := Entry{
		ID:        uuid.New().String(),
		Action:    m.Title,
		User:      auth.ActorFromContext(ctx),
		Timestamp: s.now().Format(TimestampLayout),
		Details:   m.Details,
	}
	s.entries.Create(e)

	if s.counter != nil {
		s.counter.RecordMutation(m.Entity, m.Action)
	}

	s.logger.Info().
		Str("entity", m.Entity).
		Str("action", m.Action).
		Str("record_id", m.RecordID).
		Str("user", e.User).
		Msg("mutation recorded")

	if s.publisher != nil {
		ev, err := websocket.NewEvent(websocket.DefaultTopic, m.Action, m.Entity, m.RecordID, e)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to build activity event")
			return e
		}
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.logger.Warn().Err(err).Msg("failed to publish activity event")
		}
	}
	return e
}

// Entries returns the log newest first.
func (s *Service) Entries() []Entry {
	out := slices.Clone(s.entries.All())
	slices.Reverse(out)
	return out
}

// Recent returns at most n entries, newest first.
func (s *Service) Recent(n int) []Entry {
	out := s.Entries()
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func (s *Service) Reset() {
	s.entries.Reset()
}
