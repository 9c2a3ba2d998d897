package report

import (
	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/domain/camp"
	"github.com/healthcamp/dashboard/internal/domain/patient"
)

// KPIs are the headline counters of the admin dashboard.
type KPIs struct {
	TotalCamps           int `json:"totalCamps"`
	TotalUsers           int `json:"totalUsers"`
	TotalSchemes         int `json:"totalSchemes"`
	TotalDoctors         int `json:"totalDoctors"`
	MonthlyBeneficiaries int `json:"monthlyBeneficiaries"`
	ApprovedSchemes      int `json:"approvedSchemes"`
}

// ChartPoint is one month of the camps against beneficiaries chart.
type ChartPoint struct {
	Month         string `json:"month"`
	Camps         int    `json:"camps"`
	Beneficiaries int    `json:"beneficiaries"`
}

type Dashboard struct {
	KPIs   KPIs             `json:"kpis"`
	Chart  []ChartPoint     `json:"chart"`
	Recent []activity.Entry `json:"recentActivities"`
}

// MonthlyRow is one line of the monthly report and its CSV export.
type MonthlyRow struct {
	Month         string `json:"month" csv:"Month"`
	Camps         int    `json:"camps" csv:"Camps"`
	Beneficiaries int    `json:"beneficiaries" csv:"Beneficiaries"`
	Schemes       int    `json:"schemes" csv:"Schemes"`
}

type Participation struct {
	Scheme string `json:"name" csv:"Scheme"`
	Share  int    `json:"value" csv:"Share"`
	Color  string `json:"color" csv:"-"`
}

type HealthTrend struct {
	Issue string `json:"issue" csv:"Issue"`
	Count int    `json:"count" csv:"Count"`
	Color string `json:"color" csv:"-"`
}

// Period selects how many trailing months the reports cover.
type Period string

const (
	PeriodThreeMonths Period = "3months"
	PeriodSixMonths   Period = "6months"
)

// ParsePeriod defaults to six months.
func ParsePeriod(s string) (Period, bool) {
	switch p := Period(s); p {
	case "":
		return PeriodSixMonths, true
	case PeriodThreeMonths, PeriodSixMonths:
		return p, true
	}
	return "", false
}

func (p Period) months() int {
	if p == PeriodThreeMonths {
		return 3
	}
	return 6
}

// Summary totals the monthly rows of a period.
type Summary struct {
	Period          Period `json:"period"`
	TotalCamps      int    `json:"totalCamps"`
	Beneficiaries   int    `json:"beneficiaries"`
	SchemesApproved int    `json:"schemesApproved"`
	SuccessRate     int    `json:"successRate"`
}

type Monthly struct {
	Summary Summary      `json:"summary"`
	Rows    []MonthlyRow `json:"rows"`
}

// Type names an exportable report.
type Type string

const (
	TypeMonthly       Type = "monthly"
	TypeParticipation Type = "participation"
	TypeHealthTrends  Type = "health-trends"
	TypeComprehensive Type = "comprehensive"
)

var Types = []Type{TypeMonthly, TypeParticipation, TypeHealthTrends, TypeComprehensive}

// DoctorDashboard is the landing page of the doctor portal.
type DoctorDashboard struct {
	Patients      patient.Summary `json:"patients"`
	ActiveCamps   int             `json:"activeCamps"`
	UpcomingCamps []camp.Camp     `json:"upcomingCamps"`
}
