package doctor

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/form"
	"github.com/healthcamp/dashboard/internal/platform/store"
)

const entity = "doctor"

// ActivityRecorder receives one entry per mutation.
type ActivityRecorder interface {
	Record(ctx context.Context, m activity.Mutation) activity.Entry
}

type Service struct {
	doctors  *store.Store[Doctor]
	activity ActivityRecorder
	prompts  *confirm.Registry
}

func NewService(activity ActivityRecorder, prompts *confirm.Registry) *Service {
	return &Service{
		doctors:  store.New(Seed()),
		activity: activity,
		prompts:  prompts,
	}
}

func (s *Service) List() []Doctor {
	return s.doctors.All()
}

func (s *Service) Get(id string) (Doctor, bool) {
	return s.doctors.Get(id)
}

// Create validates f and appends a new doctor under a fresh identifier.
func (s *Service) Create(ctx context.Context, f Form) (Doctor, error) {
	if err := form.Check(f, f.values(), "name", "specialty", "phone", "email"); err != nil {
		return Doctor{}, err
	}

	id := uuid.New().String()
	d := f.apply(Doctor{ID: id, Avatar: avatarFor(id), AssignedCamps: []string{}})
	s.doctors.Create(d)

	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "created",
		RecordID: d.ID,
		Title:    "नया डॉक्टर जोड़ा गया",
		Details:  fmt.Sprintf("%s को टीम में शामिल किया गया", d.Name),
	})
	return d, nil
}

// Update patches the doctor identified by id. Unknown identifiers are a
// no-op reported through ok.
func (s *Service) Update(ctx context.Context, id string, f Form) (Doctor, bool, error) {
	if err := form.Validate(f); err != nil {
		return Doctor{}, false, err
	}
	d, ok := s.doctors.Update(id, f.apply)
	if !ok {
		return Doctor{}, false, nil
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "updated",
		RecordID: id,
		Title:    "डॉक्टर विवरण अपडेट",
		Details:  fmt.Sprintf("%s का विवरण अपडेट किया गया", d.Name),
	})
	return d, true, nil
}

func (s *Service) Delete(ctx context.Context, id string) (Doctor, bool) {
	d, ok := s.doctors.Delete(id)
	if !ok {
		return Doctor{}, false
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "deleted",
		RecordID: id,
		Title:    "डॉक्टर हटाया गया",
		Details:  fmt.Sprintf("%s को टीम से हटाया गया", d.Name),
	})
	return d, true
}

// RequestDelete parks the deletion of id behind a confirmation prompt.
func (s *Service) RequestDelete(ctx context.Context, id string) (confirm.Prompt, bool) {
	d, ok := s.doctors.Get(id)
	if !ok {
		return confirm.Prompt{}, false
	}
	p := s.prompts.Request(ctx, confirm.Prompt{
		Title:        "Delete Doctor",
		Message:      fmt.Sprintf("Are you sure you want to delete Dr. %s? This action cannot be undone.", d.Name),
		ConfirmLabel: "Delete",
		Severity:     confirm.SeverityDanger,
	}, func(ctx context.Context) error {
		s.Delete(ctx, id)
		return nil
	})
	return p, true
}

func (s *Service) Stats() Stats {
	all := s.doctors.All()
	st := Stats{Total: len(all)}
	if len(all) == 0 {
		return st
	}

	specialties := map[string]struct{}{}
	years := 0
	for _, d := range all {
		years += d.Experience
		specialties[d.Specialty] = struct{}{}
		if len(d.AssignedCamps) > 0 {
			st.Assigned++
		}
	}
	st.AvgExperience = int(math.Round(float64(years) / float64(len(all))))
	st.Specialties = len(specialties)
	return st
}

func (s *Service) Reset() {
	s.doctors.Reset()
}

func avatarFor(id string) string {
	if id != "" && id[len(id)-1]%2 == 0 {
		return avatarFemale
	}
	return avatarMale
}

// DoctorName names the doctor identified by id.
func (s *Service) DoctorName(id string) (string, bool) {
	d, ok := s.doctors.Get(id)
	return d.Name, ok
}
