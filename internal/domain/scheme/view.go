package scheme

import (
	"fmt"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// maxDocumentsShown is how many documents a cell lists before summarising.
const maxDocumentsShown = 2

var View = browse.View{
	Name: "schemes",
	Columns: browse.Columns{
		browse.Col("applicantName", "Applicant").WithRender(func(v any, rec browse.Record) any {
			return fmt.Sprintf("%v (%v)", v, rec["employeeId"])
		}),
		browse.Col("schemeName", "Scheme"),
		browse.Col("amount", "Amount").WithRender(func(v any, _ browse.Record) any {
			n, _ := v.(int64)
			return Rupees(n).Display()
		}),
		browse.Col("appliedDate", "Applied Date").WithRender(func(v any, _ browse.Record) any {
			return browse.DayFirstDate(v)
		}),
		browse.Col("status", "Status").WithRender(func(v any, _ browse.Record) any {
			return browse.Capitalized(v)
		}),
		browse.Col("documents", "Documents").Unsortable().WithRender(func(v any, _ browse.Record) any {
			docs, _ := v.([]string)
			return Documents(docs)
		}),
	},
	SearchFields: []string{"applicantName", "employeeId", "schemeName"},
	DefaultSort:  "-appliedDate",
}

// Documents lists the first two documents and a "+N more" note for the
// rest.
func Documents(docs []string) []string {
	out := make([]string, 0, maxDocumentsShown+1)
	out = append(out, docs[:min(len(docs), maxDocumentsShown)]...)
	if extra := len(docs) - maxDocumentsShown; extra > 0 {
		out = append(out, fmt.Sprintf("+%d more", extra))
	}
	return out
}
