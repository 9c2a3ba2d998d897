package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/form"
	"github.com/healthcamp/dashboard/internal/platform/store"
)

const entity = "user"

type ActivityRecorder interface {
	Record(ctx context.Context, m activity.Mutation) activity.Entry
}

type Service struct {
	users    *store.Store[User]
	activity ActivityRecorder
	prompts  *confirm.Registry
}

func NewService(activity ActivityRecorder, prompts *confirm.Registry) *Service {
	return &Service{
		users:    store.New(Seed()),
		activity: activity,
		prompts:  prompts,
	}
}

func (s *Service) List() []User {
	return s.users.All()
}

func (s *Service) Get(id string) (User, bool) {
	return s.users.Get(id)
}

// UserName names the user identified by id.
func (s *Service) UserName(id string) (string, bool) {
	u, ok := s.users.Get(id)
	return u.Name, ok
}

// DisplayName finds the user registered under email, ignoring case.
func (s *Service) DisplayName(email string) (string, bool) {
	for _, u := range s.users.All() {
		if strings.EqualFold(u.Email, email) {
			return u.Name, true
		}
	}
	return "", false
}

// Create validates f and appends a new employee. Role defaults to employee.
func (s *Service) Create(ctx context.Context, f Form) (User, error) {
	if err := form.Check(f, f.values(), "name", "email", "employeeId"); err != nil {
		return User{}, err
	}

	u := f.apply(User{ID: uuid.New().String(), Role: RoleEmployee})
	s.users.Create(u)

	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "created",
		RecordID: u.ID,
		Title:    "नया कर्मचारी पंजीकृत",
		Details:  fmt.Sprintf("%s (%s) को पंजीकृत किया गया", u.Name, u.EmployeeID),
	})
	return u, nil
}

// Import creates one employee per valid row and skips the rest.
func (s *Service) Import(ctx context.Context, rows []ImportRow) ImportResult {
	res := ImportResult{Created: []User{}, Skipped: []ImportError{}}
	for i, row := range rows {
		u, err := s.Create(ctx, row.form())
		if err != nil {
			res.Skipped = append(res.Skipped, ImportError{Line: i + 2, Error: err.Error()})
			continue
		}
		res.Created = append(res.Created, u)
	}
	return res
}

func (s *Service) Update(ctx context.Context, id string, f Form) (User, bool, error) {
	if err := form.Validate(f); err != nil {
		return User{}, false, err
	}
	u, ok := s.users.Update(id, f.apply)
	if !ok {
		return User{}, false, nil
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "updated",
		RecordID: id,
		Title:    "कर्मचारी विवरण अपडेट",
		Details:  fmt.Sprintf("%s का विवरण अपडेट किया गया", u.Name),
	})
	return u, true, nil
}

func (s *Service) Delete(ctx context.Context, id string) (User, bool) {
	u, ok := s.users.Delete(id)
	if !ok {
		return User{}, false
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "deleted",
		RecordID: id,
		Title:    "कर्मचारी हटाया गया",
		Details:  fmt.Sprintf("%s (%s) को हटाया गया", u.Name, u.EmployeeID),
	})
	return u, true
}

func (s *Service) RequestDelete(ctx context.Context, id string) (confirm.Prompt, bool) {
	u, ok := s.users.Get(id)
	if !ok {
		return confirm.Prompt{}, false
	}
	p := s.prompts.Request(ctx, confirm.Prompt{
		Title:        "Delete User",
		Message:      fmt.Sprintf("Are you sure you want to delete %s (%s)? This action cannot be undone.", u.Name, u.EmployeeID),
		ConfirmLabel: "Delete",
		Severity:     confirm.SeverityDanger,
	}, func(ctx context.Context) error {
		s.Delete(ctx, id)
		return nil
	})
	return p, true
}

func (s *Service) Stats() Stats {
	all := s.users.All()
	departments := map[string]struct{}{}
	st := Stats{Total: len(all)}
	for _, u := range all {
		departments[u.Department] = struct{}{}
		if u.Role == RoleAdmin {
			st.Admins++
		}
	}
	st.Departments = len(departments)
	return st
}

func (s *Service) Reset() {
	s.users.Reset()
}
