package healthrecord

import (
	"fmt"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// CampDirectory resolves camp identifiers to their locations.
type CampDirectory interface {
	CampLocation(id string) (string, bool)
}

func NewView(users UserDirectory, camps CampDirectory) browse.View {
	return browse.View{
		Name: "health-records",
		Columns: browse.Columns{
			browse.Col("userId", "Employee").WithRender(func(v any, _ browse.Record) any {
				id, _ := v.(string)
				if users != nil {
					if name, ok := users.UserName(id); ok {
						return name
					}
				}
				return "Unknown user"
			}),
			browse.Col("date", "Date"),
			browse.Col("bloodPressure.systolic", "Blood Pressure").WithRender(func(v any, rec browse.Record) any {
				dia, _ := rec.Get("bloodPressure.diastolic")
				return fmt.Sprintf("%v/%v", v, dia)
			}),
			browse.Col("sugarLevel", "Sugar").WithRender(func(v any, _ browse.Record) any {
				return fmt.Sprintf("%v mg/dL", v)
			}),
			browse.Col("bmi", "BMI"),
			browse.Col("campId", "Camp").Unsortable().WithRender(func(v any, _ browse.Record) any {
				id, _ := v.(string)
				if id == "" || camps == nil {
					return ""
				}
				loc, _ := camps.CampLocation(id)
				return loc
			}),
			browse.Col("notes", "Notes").Unsortable(),
		},
		SearchFields: []string{"notes", "date"},
		DefaultSort:  "-date",
	}
}
