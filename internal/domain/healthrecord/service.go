package healthrecord

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/form"
	"github.com/healthcamp/dashboard/internal/platform/store"
)

const entity = "health_record"

type ActivityRecorder interface {
	Record(ctx context.Context, m activity.Mutation) activity.Entry
}

// UserDirectory resolves user identifiers to display names.
type UserDirectory interface {
	UserName(id string) (string, bool)
}

type Service struct {
	records  *store.Store[Record]
	users    UserDirectory
	activity ActivityRecorder
	prompts  *confirm.Registry
}

// NewService creates the health record service. users may be nil, in which
// case activity entries name the user by identifier.
func NewService(users UserDirectory, activity ActivityRecorder, prompts *confirm.Registry) *Service {
	return &Service{
		records:  store.New(Seed()),
		users:    users,
		activity: activity,
		prompts:  prompts,
	}
}

func (s *Service) List() []Record {
	return s.records.All()
}

func (s *Service) Get(id string) (Record, bool) {
	return s.records.Get(id)
}

// ForUser returns the timeline of userID, newest first.
func (s *Service) ForUser(userID string) []Record {
	out := []Record{}
	for _, r := range s.records.All() {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// Latest returns the most recent record of userID.
func (s *Service) Latest(userID string) (Record, bool) {
	timeline := s.ForUser(userID)
	if len(timeline) == 0 {
		return Record{}, false
	}
	return timeline[0], true
}

func (s *Service) Create(ctx context.Context, f Form) (Record, error) {
	if err := form.Check(f, f.values(), "userId", "date"); err != nil {
		return Record{}, err
	}

	r := f.apply(Record{ID: uuid.New().String()})
	s.records.Create(r)

	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "created",
		RecordID: r.ID,
		Title:    "स्वास्थ्य रिकॉर्ड जोड़ा गया",
		Details:  fmt.Sprintf("%s का नया स्वास्थ्य रिकॉर्ड दर्ज किया गया", s.userName(r.UserID)),
	})
	return r, nil
}

func (s *Service) Update(ctx context.Context, id string, f Form) (Record, bool, error) {
	if err := form.Validate(f); err != nil {
		return Record{}, false, err
	}
	r, ok := s.records.Update(id, f.apply)
	if !ok {
		return Record{}, false, nil
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "updated",
		RecordID: id,
		Title:    "स्वास्थ्य रिकॉर्ड अपडेट",
		Details:  fmt.Sprintf("%s का स्वास्थ्य रिकॉर्ड अपडेट किया गया", s.userName(r.UserID)),
	})
	return r, true, nil
}

func (s *Service) Delete(ctx context.Context, id string) (Record, bool) {
	r, ok := s.records.Delete(id)
	if !ok {
		return Record{}, false
	}
	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "deleted",
		RecordID: id,
		Title:    "स्वास्थ्य रिकॉर्ड हटाया गया",
		Details:  fmt.Sprintf("%s का %s का रिकॉर्ड हटाया गया", s.userName(r.UserID), r.Date),
	})
	return r, true
}

func (s *Service) RequestDelete(ctx context.Context, id string) (confirm.Prompt, bool) {
	r, ok := s.records.Get(id)
	if !ok {
		return confirm.Prompt{}, false
	}
	p := s.prompts.Request(ctx, confirm.Prompt{
		Title:        "Delete Health Record",
		Message:      fmt.Sprintf("Are you sure you want to delete the %s health record of %s? This action cannot be undone.", r.Date, s.userName(r.UserID)),
		ConfirmLabel: "Delete",
		Severity:     confirm.SeverityDanger,
	}, func(ctx context.Context) error {
		s.Delete(ctx, id)
		return nil
	})
	return p, true
}

// Overview summarises the latest record of every user that has one.
func (s *Service) Overview() Overview {
	all := s.records.All()
	ov := Overview{
		Records:  len(all),
		BPStatus: map[string]int{},
		Sugar:    map[string]int{},
	}

	latest := map[string]Record{}
	for _, r := range all {
		if cur, ok := latest[r.UserID]; !ok || r.Date > cur.Date {
			latest[r.UserID] = r
		}
	}

	bmi := 0.0
	for _, r := range latest {
		ov.BPStatus[BPStatus(r.BloodPressure)]++
		ov.Sugar[SugarStatus(r.SugarLevel)]++
		bmi += r.BMI
	}
	ov.Users = len(latest)
	if ov.Users > 0 {
		ov.AvgBMI = math.Round(bmi/float64(ov.Users)*10) / 10
	}
	return ov
}

func (s *Service) Reset() {
	s.records.Reset()
}

func (s *Service) userName(id string) string {
	if s.users != nil {
		if name, ok := s.users.UserName(id); ok {
			return name
		}
	}
	return id
}
