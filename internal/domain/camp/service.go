package camp

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/form"
	"github.com/healthcamp/dashboard/internal/platform/store"
)

const entity = "camp"

type ActivityRecorder interface {
	Record(ctx context.Context, m activity.Mutation) activity.Entry
}

type Service struct {
	camps    *store.Store[Camp]
	activity ActivityRecorder
	prompts  *confirm.Registry
}

func NewService(activity ActivityRecorder, prompts *confirm.Registry) *Service {
	return &Service{
		camps:    store.New(Seed()),
		activity: activity,
		prompts:  prompts,
	}
}

func (s *Service) List() []Camp {
	return s.camps.All()
}

func (s *Service) Get(id string) (Camp, bool) {
	return s.camps.Get(id)
}

// CampLocation names the camp identified by id.
func (s *Service) CampLocation(id string) (string, bool) {
	c, ok := s.camps.Get(id)
	return c.Location, ok
}

// Create validates f and appends a new camp. A camp without a status starts
// out scheduled.
func (s *Service) Create(ctx context.Context, f Form) (Camp, error) {
	if err := form.Check(f, f.values(), "location", "date", "address"); err != nil {
		return Camp{}, err
	}

	c := f.apply(Camp{ID: uuid.New().String(), Status: StatusScheduled, Doctors: []string{}})
	s.camps.Create(c)

	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "created",
		RecordID: c.ID,
		Title:    "शिविर निर्धारित",
		Details:  fmt.Sprintf("%s में नया शिविर निर्धारित", c.Location),
	})
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, f Form) (Camp, bool, error) {
	if err := form.Validate(f); err != nil {
		return Camp{}, false, err
	}
	c, ok := s.camps.Update(id, f.apply)
	if !ok {
		return Camp{}, false, nil
	}

	title, details := "शिविर अपडेट", fmt.Sprintf("%s शिविर का विवरण अपडेट किया गया", c.Location)
	if f.Status != nil && *f.Status == StatusCompleted {
		title, details = "शिविर पूर्ण", fmt.Sprintf("%s में स्वास्थ्य शिविर पूर्ण", c.Location)
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "updated",
		RecordID: id,
		Title:    title,
		Details:  details,
	})
	return c, true, nil
}

func (s *Service) Delete(ctx context.Context, id string) (Camp, bool) {
	c, ok := s.camps.Delete(id)
	if !ok {
		return Camp{}, false
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "deleted",
		RecordID: id,
		Title:    "शिविर रद्द",
		Details:  fmt.Sprintf("%s का शिविर हटाया गया", c.Location),
	})
	return c, true
}

func (s *Service) RequestDelete(ctx context.Context, id string) (confirm.Prompt, bool) {
	c, ok := s.camps.Get(id)
	if !ok {
		return confirm.Prompt{}, false
	}
	p := s.prompts.Request(ctx, confirm.Prompt{
		Title:        "Delete Camp",
		Message:      fmt.Sprintf("Are you sure you want to delete the camp at %s on %s? This action cannot be undone.", c.Location, c.Date),
		ConfirmLabel: "Delete",
		Severity:     confirm.SeverityDanger,
	}, func(ctx context.Context) error {
		s.Delete(ctx, id)
		return nil
	})
	return p, true
}

// Upcoming lists scheduled camps, earliest first.
func (s *Service) Upcoming() []Camp {
	out := []Camp{}
	for _, c := range s.camps.All() {
		if c.Status == StatusScheduled {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b Camp) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.Time, b.Time))
	})
	return out
}

func (s *Service) Stats() Stats {
	all := s.camps.All()
	st := Stats{Total: len(all)}
	for _, c := range all {
		switch c.Status {
		case StatusScheduled:
			st.Scheduled++
		case StatusCompleted:
			st.Completed++
			st.Beneficiaries += c.Beneficiaries
		case StatusCancelled:
			st.Cancelled++
		}
	}
	return st
}

func (s *Service) Reset() {
	s.camps.Reset()
}
