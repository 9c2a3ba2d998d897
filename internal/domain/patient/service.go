package patient

import (
	"time"

	"github.com/healthcamp/dashboard/internal/platform/store"
)

// recentVisitWindow is how far back a visit still counts as this week.
const recentVisitWindow = 7 * 24 * time.Hour

type Service struct {
	patients *store.Store[Patient]
	now      func() time.Time
}

func NewService() *Service {
	return &Service{patients: store.New(Seed()), now: time.Now}
}

func (s *Service) List() []Patient {
	return s.patients.All()
}

func (s *Service) Get(id string) (Patient, bool) {
	return s.patients.Get(id)
}

// Summary counts patients by health status and those seen within the last
// seven days, in either direction of today.
func (s *Service) Summary() Summary {
	all := s.patients.All()
	sum := Summary{Total: len(all), ByStatus: map[HealthStatus]int{}}
	today := s.now()
	for _, p := range all {
		sum.ByStatus[p.HealthStatus]++
		sum.FamilyMembers += p.FamilyMembers
		if p.HealthStatus == StatusGood {
			sum.Healthy++
		}
		if visit, err := time.ParseInLocation("2006-01-02", p.LastVisit, today.Location()); err == nil {
			if d := today.Sub(visit).Abs(); d <= recentVisitWindow {
				sum.SeenThisWeek++
			}
		}
	}
	return sum
}

func (s *Service) Reset() {
	s.patients.Reset()
}
