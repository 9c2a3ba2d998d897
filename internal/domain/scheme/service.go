package scheme

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/platform/auth"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/store"
)

const entity = "scheme"

// ErrNotPending is returned when reviewing an application that already has
// a verdict.
var ErrNotPending = errors.New("scheme application is not pending")

type ActivityRecorder interface {
	Record(ctx context.Context, m activity.Mutation) activity.Entry
}

type Service struct {
	applications *store.Store[Application]
	activity     ActivityRecorder
	prompts      *confirm.Registry
	now          func() time.Time
	logger       zerolog.Logger
}

func NewService(activity ActivityRecorder, prompts *confirm.Registry, logger zerolog.Logger) *Service {
	return &Service{
		applications: store.New(Seed()),
		activity:     activity,
		prompts:      prompts,
		now:          time.Now,
		logger:       logger.With().Str("component", "scheme").Logger(),
	}
}

// List returns the applications with status, or all of them when status
// is empty.
func (s *Service) List(status Status) []Application {
	all := s.applications.All()
	if status == "" {
		return all
	}
	out := []Application{}
	for _, a := range all {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

func (s *Service) Get(id string) (Application, bool) {
	return s.applications.Get(id)
}

// Review records the verdict d on a pending application, attributed to the
// session on ctx and dated today.
func (s *Service) Review(ctx context.Context, id string, d Decision) (Application, bool, error) {
	reviewer := auth.ActorFromContext(ctx)
	pending := false
	a, ok := s.applications.Update(id, func(a Application) Application {
		if a.Status != StatusPending {
			return a
		}
		pending = true
		a.Status = d.status()
		a.ReviewedBy = reviewer
		a.ReviewDate = s.now().Format("2006-01-02")
		a.Remarks = d.remarks()
		return a
	})
	if !ok {
		return Application{}, false, nil
	}
	if !pending {
		return a, true, ErrNotPending
	}

	title, verb := "योजना स्वीकृत", "अनुमोदित"
	if d == DecisionReject {
		title, verb = "योजना अस्वीकृत", "अस्वीकृत"
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   string(a.Status),
		RecordID: id,
		Title:    title,
		Details:  fmt.Sprintf("%s की %s %s", a.ApplicantName, a.SchemeName, verb),
	})
	return a, true, nil
}

// RequestReview parks the verdict d behind a confirmation prompt. Only
// pending applications can be reviewed.
func (s *Service) RequestReview(ctx context.Context, id string, d Decision) (confirm.Prompt, bool, error) {
	a, ok := s.applications.Get(id)
	if !ok {
		return confirm.Prompt{}, false, nil
	}
	if a.Status != StatusPending {
		return confirm.Prompt{}, true, ErrNotPending
	}

	p := confirm.Prompt{
		Title:        "Approve Scheme",
		Message:      fmt.Sprintf("Are you sure you want to approve the scheme application for %s?", a.ApplicantName),
		ConfirmLabel: "Approve",
		Severity:     confirm.SeveritySuccess,
	}
	if d == DecisionReject {
		p.Title = "Reject Scheme"
		p.Message = fmt.Sprintf("Are you sure you want to reject the scheme application for %s?", a.ApplicantName)
		p.ConfirmLabel = "Reject"
		p.Severity = confirm.SeverityDanger
	}

	p = s.prompts.Request(ctx, p, func(ctx context.Context) error {
		if _, _, err := s.Review(ctx, id, d); err != nil {
			s.logger.Warn().Err(err).Str("scheme_id", id).Msg("review skipped")
		}
		return nil
	})
	return p, true, nil
}

func (s *Service) Summary() Summary {
	var sum Summary
	approved := Rupees(0)
	for _, a := range s.applications.All() {
		switch a.Status {
		case StatusPending:
			sum.Pending++
		case StatusApproved:
			sum.Approved++
			if next, err := approved.Add(Rupees(a.Amount)); err == nil {
				approved = next
			}
		case StatusRejected:
			sum.Rejected++
		}
	}
	sum.ApprovedAmount = approved.Amount() / 100
	sum.ApprovedDisplay = approved.Display()
	return sum
}

func (s *Service) Reset() {
	s.applications.Reset()
}
