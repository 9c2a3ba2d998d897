package confirm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthcamp/dashboard/internal/platform/auth"
)

func newTestRegistry(ttl time.Duration) (*Registry, *time.Time) {
	r := NewRegistry(ttl, zerolog.Nop())
	now := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	return r, &now
}

func TestRequest_FillsDefaults(t *testing.T) {
	r, now := newTestRegistry(time.Minute)
	p := r.Request(context.Background(), Prompt{Title: "Delete Doctor"}, nil)

	if p.Token == "" {
		t.Fatal("expected a token")
	}
	if p.ConfirmLabel != "Confirm" || p.CancelLabel != "Cancel" {
		t.Errorf("unexpected labels %q/%q", p.ConfirmLabel, p.CancelLabel)
	}
	if p.Severity != SeverityWarning {
		t.Errorf("expected warning severity, got %s", p.Severity)
	}
	if !p.ExpiresAt.Equal(now.Add(time.Minute)) {
		t.Errorf("unexpected expiry %v", p.ExpiresAt)
	}
	if r.Pending() != 1 {
		t.Errorf("expected 1 pending prompt, got %d", r.Pending())
	}
}

func TestResolve_ConfirmRunsActionOnce(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	calls := 0
	p := r.Request(context.Background(), Prompt{Title: "Delete"}, func(context.Context) error {
		calls++
		return nil
	})

	outcome, err := r.Resolve(context.Background(), p.Token, DecisionConfirm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeConfirmed {
		t.Errorf("expected confirmed, got %s", outcome)
	}
	if calls != 1 {
		t.Errorf("expected action to run once, ran %d times", calls)
	}

	if _, err := r.Resolve(context.Background(), p.Token, DecisionConfirm); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("expected ErrUnknownToken on reuse, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected action not to rerun, ran %d times", calls)
	}
}

func TestResolve_CancelSkipsAction(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	ran := false
	p := r.Request(context.Background(), Prompt{Title: "Delete"}, func(context.Context) error {
		ran = true
		return nil
	})

	outcome, err := r.Resolve(context.Background(), p.Token, DecisionCancel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeCancelled {
		t.Errorf("expected cancelled, got %s", outcome)
	}
	if ran {
		t.Error("expected action not to run on cancel")
	}
	if r.Pending() != 0 {
		t.Errorf("expected no pending prompts, got %d", r.Pending())
	}
}

func TestResolve_Expired(t *testing.T) {
	r, now := newTestRegistry(time.Minute)
	p := r.Request(context.Background(), Prompt{Title: "Delete"}, func(context.Context) error {
		t.Fatal("expired action must not run")
		return nil
	})

	*now = now.Add(2 * time.Minute)

	if _, err := r.Resolve(context.Background(), p.Token, DecisionConfirm); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("expected ErrUnknownToken, got %v", err)
	}
}

func TestResolve_ActionError(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	boom := errors.New("boom")
	p := r.Request(context.Background(), Prompt{Title: "Delete"}, func(context.Context) error { return boom })

	_, err := r.Resolve(context.Background(), p.Token, DecisionConfirm)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped action error, got %v", err)
	}
}

func TestResolve_OnlyOwnerMayAnswer(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	admin := auth.WithSession(context.Background(), auth.Session{Subject: "admin@company.com", Portal: auth.PortalAdmin})
	doctor := auth.WithSession(context.Background(), auth.Session{Subject: "doctor@camp.in", Portal: auth.PortalDoctor})

	ran := false
	p := r.Request(admin, Prompt{Title: "Delete Camp"}, func(context.Context) error {
		ran = true
		return nil
	})

	for name, ctx := range map[string]context.Context{"other session": doctor, "anonymous": context.Background()} {
		if _, err := r.Resolve(ctx, p.Token, DecisionConfirm); !errors.Is(err, ErrNotOwner) {
			t.Errorf("%s: expected ErrNotOwner, got %v", name, err)
		}
		if _, err := r.Lookup(ctx, p.Token); !errors.Is(err, ErrNotOwner) {
			t.Errorf("%s: expected lookup to be refused, got %v", name, err)
		}
	}
	if ran || r.Pending() != 1 {
		t.Fatal("expected a foreign answer to leave the prompt pending")
	}

	if _, err := r.Resolve(admin, p.Token, DecisionConfirm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Error("expected the owner's confirmation to run the action")
	}
}

func TestPending_PrunesExpired(t *testing.T) {
	r, now := newTestRegistry(time.Minute)
	r.Request(context.Background(), Prompt{Title: "a"}, nil)
	r.Request(context.Background(), Prompt{Title: "b"}, nil)
	*now = now.Add(time.Hour)
	if got := r.Pending(); got != 0 {
		t.Errorf("expected expired prompts to be pruned, got %d", got)
	}
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		in      string
		want    Decision
		wantErr bool
	}{
		{"confirm", DecisionConfirm, false},
		{"cancel", DecisionCancel, false},
		{"", "", true},
		{"yes", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecision(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDecision(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDecision(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
