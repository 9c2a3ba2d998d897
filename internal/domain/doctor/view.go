package doctor

import (
	"fmt"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// CampDirectory resolves camp identifiers to their locations.
type CampDirectory interface {
	CampLocation(id string) (string, bool)
}

// maxCampsShown is how many assigned camps a cell lists before summarising.
const maxCampsShown = 2

// NewView builds the doctors table. Camp references are resolved through
// camps at render time, and dangling ones are left out.
func NewView(camps CampDirectory) browse.View {
	return browse.View{
		Name: "doctors",
		Columns: browse.Columns{
			browse.Col("name", "Doctor").WithRender(func(v any, rec browse.Record) any {
				return fmt.Sprintf("%v (%v)", v, rec["qualification"])
			}),
			browse.Col("specialty", "Specialty"),
			browse.Col("experience", "Experience").WithRender(func(v any, _ browse.Record) any {
				return fmt.Sprintf("%v years", v)
			}),
			browse.Col("phone", "Contact").WithRender(func(v any, rec browse.Record) any {
				return fmt.Sprintf("%v · %v", v, rec["email"])
			}),
			browse.Col("assignedCamps", "Assigned Camps").Unsortable().WithRender(func(v any, _ browse.Record) any {
				ids, _ := v.([]string)
				return AssignedCamps(ids, camps)
			}),
		},
		SearchFields: []string{"name", "specialty", "email", "qualification"},
		DefaultSort:  "name",
	}
}

// AssignedCamps renders a doctor's camp assignments: the first two resolved
// locations, a "+N more" note for the rest, or "Not assigned".
func AssignedCamps(ids []string, camps CampDirectory) []string {
	if len(ids) == 0 {
		return []string{"Not assigned"}
	}

	out := make([]string, 0, maxCampsShown+1)
	for _, id := range ids[:min(len(ids), maxCampsShown)] {
		if camps == nil {
			continue
		}
		if loc, ok := camps.CampLocation(id); ok {
			out = append(out, loc)
		}
	}
	if extra := len(ids) - maxCampsShown; extra > 0 {
		out = append(out, fmt.Sprintf("+%d more", extra))
	}
	return out
}
