package report

import (
	"fmt"
	"io"

	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/domain/camp"
	"github.com/healthcamp/dashboard/internal/domain/doctor"
	"github.com/healthcamp/dashboard/internal/domain/patient"
	"github.com/healthcamp/dashboard/internal/domain/scheme"
	"github.com/healthcamp/dashboard/internal/domain/user"
	"github.com/healthcamp/dashboard/internal/platform/csvio"
)

// dashboardActivities is how many recent entries the dashboard shows.
const dashboardActivities = 5

type CampSource interface {
	Stats() camp.Stats
	Upcoming() []camp.Camp
}

type UserSource interface {
	Stats() user.Stats
}

type SchemeSource interface {
	Summary() scheme.Summary
}

type DoctorSource interface {
	Stats() doctor.Stats
}

type PatientSource interface {
	Summary() patient.Summary
}

type ActivityFeed interface {
	Recent(n int) []activity.Entry
}

// Sources are the live services the reports read from.
type Sources struct {
	Camps    CampSource
	Users    UserSource
	Schemes  SchemeSource
	Doctors  DoctorSource
	Patients PatientSource
	Activity ActivityFeed
}

type Service struct {
	src Sources
}

func NewService(src Sources) *Service {
	return &Service{src: src}
}

// KPIs are computed from the current state of every store.
func (s *Service) KPIs() KPIs {
	camps := s.src.Camps.Stats()
	schemes := s.src.Schemes.Summary()
	return KPIs{
		TotalCamps:           camps.Total,
		TotalUsers:           s.src.Users.Stats().Total,
		TotalSchemes:         schemes.Pending + schemes.Approved + schemes.Rejected,
		TotalDoctors:         s.src.Doctors.Stats().Total,
		MonthlyBeneficiaries: camps.Beneficiaries,
		ApprovedSchemes:      schemes.Approved,
	}
}

func (s *Service) Dashboard() Dashboard {
	d := Dashboard{KPIs: s.KPIs(), Chart: seedChart(), Recent: []activity.Entry{}}
	if s.src.Activity != nil {
		d.Recent = s.src.Activity.Recent(dashboardActivities)
	}
	return d
}

// Monthly returns the trailing months of p with their totals.
func (s *Service) Monthly(p Period) Monthly {
	rows := seedMonthly()
	rows = rows[max(0, len(rows)-p.months()):]

	sum := Summary{Period: p, SuccessRate: successRate}
	for _, r := range rows {
		sum.TotalCamps += r.Camps
		sum.Beneficiaries += r.Beneficiaries
		sum.SchemesApproved += r.Schemes
	}
	return Monthly{Summary: sum, Rows: rows}
}

func (s *Service) Participation() []Participation {
	return seedParticipation()
}

func (s *Service) HealthTrends() []HealthTrend {
	return seedHealthTrends()
}

func (s *Service) DoctorDashboard() DoctorDashboard {
	upcoming := s.src.Camps.Upcoming()
	return DoctorDashboard{
		Patients:      s.src.Patients.Summary(),
		ActiveCamps:   len(upcoming),
		UpcomingCamps: upcoming,
	}
}

// Filename is the attachment name of an exported report.
func Filename(t Type) string {
	return fmt.Sprintf("%s-report.csv", t)
}

// Export writes report t as CSV. Monthly and comprehensive reports carry
// the six-month rows; the chart reports carry their own series.
func (s *Service) Export(w io.Writer, t Type) error {
	switch t {
	case TypeMonthly, TypeComprehensive:
		return csvio.Encode(w, s.Monthly(PeriodSixMonths).Rows)
	case TypeParticipation:
		return csvio.Encode(w, s.Participation())
	case TypeHealthTrends:
		return csvio.Encode(w, s.HealthTrends())
	}
	return fmt.Errorf("unknown report type %q", t)
}
