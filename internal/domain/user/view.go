package user

import (
	"fmt"

	"github.com/healthcamp/dashboard/internal/domain/healthrecord"
	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// HealthHistory supplies the checkup timeline of a user, newest first.
type HealthHistory interface {
	ForUser(userID string) []healthrecord.Record
}

// TimelineEntry is one checkup as shown beneath an expanded user row.
type TimelineEntry struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	BloodPressure string  `json:"bloodPressure"`
	Sugar         string  `json:"sugar"`
	BMI           float64 `json:"bmi"`
	Notes         string  `json:"notes,omitempty"`
}

// Timeline is the detail of an expanded user row.
type Timeline struct {
	Title   string          `json:"title"`
	Entries []TimelineEntry `json:"entries"`
	Empty   string          `json:"empty,omitempty"`
}

func NewView(history HealthHistory) browse.View {
	return browse.View{
		Name: "users",
		Columns: browse.Columns{
			browse.Col("name", "Employee").WithRender(func(v any, rec browse.Record) any {
				return fmt.Sprintf("%v (%v)", v, rec["employeeId"])
			}),
			browse.Col("department", "Department"),
			browse.Col("joiningDate", "Joining Date").WithRender(func(v any, _ browse.Record) any {
				return browse.DayFirstDate(v)
			}),
			browse.Col("phone", "Contact").WithRender(func(v any, rec browse.Record) any {
				return fmt.Sprintf("%v · %v", v, rec["email"])
			}),
			browse.Col("role", "Role").WithRender(func(v any, _ browse.Record) any {
				return browse.Capitalized(v)
			}),
			browse.Col("healthStatus", "Health Status").Unsortable().WithRender(func(_ any, rec browse.Record) any {
				return HealthStatus(history.ForUser(rec.ID()))
			}),
		},
		SearchFields: []string{"name", "email", "employeeId", "department"},
		DefaultSort:  "name",
		Detail: func(rec browse.Record) any {
			return BuildTimeline(history.ForUser(rec.ID()))
		},
	}
}

// HealthStatus summarises the latest record of a timeline.
func HealthStatus(timeline []healthrecord.Record) string {
	if len(timeline) == 0 {
		return "No records"
	}
	latest := timeline[0]
	return fmt.Sprintf("BP: %s · Sugar: %s",
		healthrecord.BPStatus(latest.BloodPressure),
		healthrecord.SugarStatus(latest.SugarLevel))
}

func BuildTimeline(records []healthrecord.Record) Timeline {
	t := Timeline{Title: "Health Records Timeline", Entries: make([]TimelineEntry, 0, len(records))}
	for _, r := range records {
		t.Entries = append(t.Entries, TimelineEntry{
			ID:            r.ID,
			Date:          browse.Text(browse.DayFirstDate(r.Date)),
			BloodPressure: r.BloodPressure.String(),
			Sugar:         fmt.Sprintf("%d mg/dL", r.SugarLevel),
			BMI:           r.BMI,
			Notes:         r.Notes,
		})
	}
	if len(t.Entries) == 0 {
		t.Empty = "No health records available"
	}
	return t
}

// Lines renders the timeline for plain-text output.
func (t Timeline) Lines() []string {
	if len(t.Entries) == 0 {
		return []string{t.Empty}
	}
	lines := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		lines = append(lines, fmt.Sprintf("%s · BP %s · Sugar %s · BMI %.1f", e.Date, e.BloodPressure, e.Sugar, e.BMI))
	}
	return lines
}
