package family

import (
	"fmt"
	"strings"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// Directory looks up a family by identifier.
type Directory interface {
	Get(id string) (Family, bool)
}

// NewView lists households. Expanded rows carry the member cards.
func NewView(families Directory) browse.View {
	return browse.View{
		Name: "families",
		Columns: browse.Columns{
			browse.Col("headName", "Family Head").WithRender(func(v any, rec browse.Record) any {
				return fmt.Sprintf("%v (%v)", v, rec["id"])
			}),
			browse.Col("phone", "Phone"),
			browse.Col("address", "Address"),
			browse.Col("registrationDate", "Registered").WithRender(func(v any, _ browse.Record) any {
				return browse.DayFirstDate(v)
			}),
			browse.Col("totalMembers", "Members").WithRender(func(v any, _ browse.Record) any {
				return fmt.Sprintf("%v सदस्य", v)
			}),
			browse.Col("healthCounts", "Health Summary").Unsortable().WithRender(func(v any, _ browse.Record) any {
				counts, _ := v.(map[HealthStatus]int)
				return HealthSummary(counts)
			}),
		},
		SearchFields: []string{"headName", "phone", "address"},
		DefaultSort:  "id",
		Detail: func(rec browse.Record) any {
			fam, ok := families.Get(rec.ID())
			if !ok {
				return MemberCards{}
			}
			return Cards(fam.Members)
		},
	}
}

// HealthSummary renders status counts from best to worst, skipping
// statuses no member has.
func HealthSummary(counts map[HealthStatus]int) string {
	parts := make([]string, 0, len(counts))
	for _, s := range HealthStatuses {
		if n := counts[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", s.Label(), n))
		}
	}
	if len(parts) == 0 {
		return "No members"
	}
	return strings.Join(parts, " · ")
}

// MemberCard is the expanded view of one family member.
type MemberCard struct {
	Name            string   `json:"name"`
	Relation        string   `json:"relation"`
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	Health          string   `json:"health"`
	LastCheckup     string   `json:"lastCheckup"`
	NextAppointment string   `json:"nextAppointment,omitempty"`
	BloodGroup      string   `json:"bloodGroup,omitempty"`
	Conditions      []string `json:"conditions,omitempty"`
	Medications     []string `json:"medications,omitempty"`
	Allergies       []string `json:"allergies,omitempty"`
}

// MemberCards is the detail of an expanded family row.
type MemberCards []MemberCard

func Cards(members []Member) MemberCards {
	cards := make(MemberCards, 0, len(members))
	for _, m := range members {
		card := MemberCard{
			Name:        m.Name,
			Relation:    m.Relation.Label(),
			Age:         m.Age,
			Gender:      m.Gender,
			Health:      m.HealthStatus.Label(),
			LastCheckup: browse.Text(browse.DayFirstDate(m.LastCheckup)),
			BloodGroup:  m.BloodGroup,
			Conditions:  m.Conditions,
			Medications: m.Medications,
			Allergies:   m.Allergies,
		}
		if m.NextAppointment != "" {
			card.NextAppointment = browse.Text(browse.DayFirstDate(m.NextAppointment))
		}
		cards = append(cards, card)
	}
	return cards
}

// Lines renders one line per member for plain-text output.
func (cs MemberCards) Lines() []string {
	lines := make([]string, 0, len(cs))
	for _, c := range cs {
		line := fmt.Sprintf("%s (%s, %d) · %s · checkup %s", c.Name, c.Relation, c.Age, c.Health, c.LastCheckup)
		if len(c.Conditions) > 0 {
			line += " · " + strings.Join(c.Conditions, ", ")
		}
		lines = append(lines, line)
	}
	return lines
}
