package patient

import (
	"fmt"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

var View = browse.View{
	Name: "patients",
	Columns: browse.Columns{
		browse.Col("name", "Patient").WithRender(func(v any, rec browse.Record) any {
			return fmt.Sprintf("%v (%v, %v)", v, rec["age"], rec["gender"])
		}),
		browse.Col("phone", "Phone"),
		browse.Col("address", "Address"),
		browse.Col("lastVisit", "Last Visit").WithRender(func(v any, _ browse.Record) any {
			return browse.DayFirstDate(v)
		}),
		browse.Col("healthStatus", "Health").WithRender(func(v any, _ browse.Record) any {
			s, _ := v.(string)
			return HealthStatus(s).Label()
		}),
		browse.Col("familyMembers", "Family").WithRender(func(v any, _ browse.Record) any {
			return fmt.Sprintf("%v पारिवारिक सदस्य", v)
		}),
	},
	SearchFields: []string{"name", "phone", "address"},
	DefaultSort:  "-lastVisit",
}
