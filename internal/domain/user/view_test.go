package user

import (
	"testing"

	"github.com/healthcamp/dashboard/internal/domain/healthrecord"
	"github.com/healthcamp/dashboard/internal/platform/browse"
)

type mockHistory map[string][]healthrecord.Record

func (m mockHistory) ForUser(userID string) []healthrecord.Record {
	return m[userID]
}

func testHistory() mockHistory {
	return mockHistory{
		"1": {
			{ID: "1", UserID: "1", Date: "2025-07-10", BloodPressure: healthrecord.BloodPressure{Systolic: 120, Diastolic: 80}, SugarLevel: 110, BMI: 22.9, Notes: "सामान्य स्वास्थ्य"},
			{ID: "3", UserID: "1", Date: "2025-06-15", BloodPressure: healthrecord.BloodPressure{Systolic: 115, Diastolic: 75}, SugarLevel: 105, BMI: 22.5},
		},
	}
}

func TestHealthStatus(t *testing.T) {
	h := testHistory()
	if got := HealthStatus(h.ForUser("1")); got != "BP: High · Sugar: Pre-diabetic" {
		t.Errorf("unexpected status %q", got)
	}
	if got := HealthStatus(h.ForUser("3")); got != "No records" {
		t.Errorf("expected no records, got %q", got)
	}
}

func TestBuildTimeline(t *testing.T) {
	tl := BuildTimeline(testHistory().ForUser("1"))
	if len(tl.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(tl.Entries))
	}
	if tl.Entries[0].Date != "10/7/2025" || tl.Entries[0].BloodPressure != "120/80" || tl.Entries[0].Sugar != "110 mg/dL" {
		t.Errorf("unexpected entry %+v", tl.Entries[0])
	}
	if empty := BuildTimeline(nil); empty.Empty != "No health records available" {
		t.Errorf("expected empty message, got %+v", empty)
	}
}

func TestView_DetailOnlyForExpandedVisibleRows(t *testing.T) {
	view := NewView(testHistory())
	exp := browse.NewExpansion()
	exp.Toggle("1")
	exp.Toggle("4")

	res := view.Apply(browse.Records(Seed()), browse.Query{Page: 1, PageSize: 10}, exp)
	for _, row := range res.Rows {
		switch row.ID {
		case "1":
			tl, ok := row.Detail.(Timeline)
			if !row.Expanded || !ok || len(tl.Entries) != 2 {
				t.Errorf("expected timeline for user 1, got %+v", row)
			}
		case "4":
			tl, ok := row.Detail.(Timeline)
			if !row.Expanded || !ok || tl.Empty == "" {
				t.Errorf("expected empty timeline for user 4, got %+v", row)
			}
		default:
			if row.Expanded || row.Detail != nil {
				t.Errorf("expected row %s collapsed", row.ID)
			}
		}
	}

	// Filtering user 1 out and back in keeps it expanded.
	res = view.Apply(browse.Records(Seed()), browse.Query{Search: "EMP004", Page: 1, PageSize: 10}, exp)
	if len(res.Rows) != 1 || res.Rows[0].ID != "4" {
		t.Fatalf("expected only user 4, got %+v", res.Rows)
	}
	if !exp.IsExpanded("1") {
		t.Error("expected expansion to survive filtering")
	}
}

func TestView_JoiningDateAndRole(t *testing.T) {
	view := NewView(testHistory())
	row := view.RenderRow(Seed()[2].ToRecord())
	if row.Cells["joiningDate"] != "20/3/2020" {
		t.Errorf("unexpected joining date %v", row.Cells["joiningDate"])
	}
	if row.Cells["role"] != "Admin" {
		t.Errorf("unexpected role %v", row.Cells["role"])
	}
}

func TestTimeline_Lines(t *testing.T) {
	lines := BuildTimeline(testHistory().ForUser("1")).Lines()
	if len(lines) != 2 || lines[0] != "10/7/2025 · BP 120/80 · Sugar 110 mg/dL · BMI 22.9" {
		t.Errorf("unexpected lines %q", lines)
	}
	if lines := BuildTimeline(nil).Lines(); len(lines) != 1 || lines[0] != "No health records available" {
		t.Errorf("unexpected empty lines %q", lines)
	}
}
