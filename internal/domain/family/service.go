package family

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/platform/form"
	"github.com/healthcamp/dashboard/internal/platform/store"
)

const entity = "family"

type ActivityRecorder interface {
	Record(ctx context.Context, m activity.Mutation) activity.Entry
}

type Service struct {
	families *store.Store[Family]
	activity ActivityRecorder
	now      func() time.Time
}

func NewService(activity ActivityRecorder) *Service {
	return &Service{
		families: store.New(Seed()),
		activity: activity,
		now:      time.Now,
	}
}

// List returns the families on the tab selected by f.
func (s *Service) List(f Filter) []Family {
	all := s.families.All()
	if f == FilterAll || f == "" {
		return all
	}
	out := []Family{}
	for _, fam := range all {
		if f.Matches(fam) {
			out = append(out, fam)
		}
	}
	return out
}

func (s *Service) Get(id string) (Family, bool) {
	return s.families.Get(id)
}

// AddMember appends a member built from f to the family identified by id.
// New members start in good health with a checkup dated today.
func (s *Service) AddMember(ctx context.Context, id string, f MemberForm) (Member, bool, error) {
	if err := form.Check(f, f.values(), "name"); err != nil {
		return Member{}, false, err
	}

	m := f.member("M"+uuid.New().String(), s.now().Format("2006-01-02"))
	fam, ok := s.families.Update(id, func(fam Family) Family {
		fam.Members = append(slices.Clone(fam.Members), m)
		fam.TotalMembers++
		return fam
	})
	if !ok {
		return Member{}, false, nil
	}

	s.activity.Record(ctx, activity.Mutation{
		Entity:   entity,
		Action:   "member_added",
		RecordID: fam.ID,
		Title:    "परिवार सदस्य जोड़ा गया",
		Details:  fmt.Sprintf("%s के परिवार में %s को जोड़ा गया", fam.HeadName, m.Name),
	})
	return m, true, nil
}

func (s *Service) Statistics() Statistics {
	all := s.families.All()
	st := Statistics{TotalFamilies: len(all)}
	for _, fam := range all {
		st.TotalMembers += fam.TotalMembers
		for _, m := range fam.Members {
			switch {
			case m.HealthStatus.Healthy():
				st.HealthyMembers++
			case m.HealthStatus.NeedsAttention():
				st.NeedsAttention++
			}
		}
	}
	return st
}

func (s *Service) Reset() {
	s.families.Reset()
}
