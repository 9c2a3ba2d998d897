package camp

import (
	"fmt"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// DoctorDirectory resolves doctor identifiers to display names.
type DoctorDirectory interface {
	DoctorName(id string) (string, bool)
}

func NewView(doctors DoctorDirectory) browse.View {
	return browse.View{
		Name: "camps",
		Columns: browse.Columns{
			browse.Col("location", "Location").WithRender(func(v any, rec browse.Record) any {
				return fmt.Sprintf("%v (%v)", v, rec["address"])
			}),
			browse.Col("date", "Date").WithRender(func(v any, rec browse.Record) any {
				return fmt.Sprintf("%v %v", v, rec["time"])
			}),
			browse.Col("doctors", "Doctors").Unsortable().WithRender(func(v any, _ browse.Record) any {
				ids, _ := v.([]string)
				return DoctorNames(ids, doctors)
			}),
			browse.Col("status", "Status"),
			browse.Col("beneficiaries", "Beneficiaries").WithRender(func(v any, rec browse.Record) any {
				return fmt.Sprintf("%v / %v", v, rec["expectedBeneficiaries"])
			}),
			browse.Col("coordinator", "Coordinator"),
		},
		SearchFields: []string{"location", "address", "coordinator", "status"},
		DefaultSort:  "date",
	}
}

// DoctorNames resolves ids in order, leaving out the ones that no longer
// name a doctor.
func DoctorNames(ids []string, doctors DoctorDirectory) []string {
	out := make([]string, 0, len(ids))
	if doctors == nil {
		return out
	}
	for _, id := range ids {
		if name, ok := doctors.DoctorName(id); ok {
			out = append(out, name)
		}
	}
	return out
}
