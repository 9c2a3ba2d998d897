package family

import (
	"slices"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/form"
)

type HealthStatus string

const (
	StatusExcellent HealthStatus = "excellent"
	StatusGood      HealthStatus = "good"
	StatusFair      HealthStatus = "fair"
	StatusPoor      HealthStatus = "poor"
	StatusCritical  HealthStatus = "critical"
)

// HealthStatuses from best to worst.
var HealthStatuses = []HealthStatus{StatusExcellent, StatusGood, StatusFair, StatusPoor, StatusCritical}

// NeedsAttention reports whether s calls for a follow-up.
func (s HealthStatus) NeedsAttention() bool {
	return s == StatusFair || s == StatusPoor || s == StatusCritical
}

func (s HealthStatus) Healthy() bool {
	return s == StatusExcellent || s == StatusGood
}

// Label is the Hindi caption shown next to a status.
func (s HealthStatus) Label() string {
	switch s {
	case StatusExcellent:
		return "उत्कृष्ट"
	case StatusGood:
		return "अच्छी"
	case StatusFair:
		return "ठीक"
	case StatusPoor:
		return "खराब"
	case StatusCritical:
		return "गंभीर"
	}
	return "अज्ञात"
}

type Relation string

const (
	RelationSpouse  Relation = "spouse"
	RelationChild   Relation = "child"
	RelationParent  Relation = "parent"
	RelationSibling Relation = "sibling"
	RelationOther   Relation = "other"
)

func (r Relation) Label() string {
	switch r {
	case RelationSpouse:
		return "पति/पत्नी"
	case RelationChild:
		return "बच्चा"
	case RelationParent:
		return "माता-पिता"
	case RelationSibling:
		return "भाई-बहन"
	case RelationOther:
		return "अन्य"
	}
	return "अज्ञात"
}

type Member struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Relation        Relation     `json:"relation"`
	Age             int          `json:"age"`
	Gender          string       `json:"gender"`
	HealthStatus    HealthStatus `json:"healthStatus"`
	LastCheckup     string       `json:"lastCheckup"`
	Conditions      []string     `json:"conditions"`
	Medications     []string     `json:"medications"`
	NextAppointment string       `json:"nextAppointment,omitempty"`
	BloodGroup      string       `json:"bloodGroup,omitempty"`
	Allergies       []string     `json:"allergies"`
}

// Family is a household registered for family health tracking.
type Family struct {
	ID               string   `json:"id"`
	HeadName         string   `json:"headName"`
	Phone            string   `json:"phone"`
	Address          string   `json:"address"`
	RegistrationDate string   `json:"registrationDate"`
	TotalMembers     int      `json:"totalMembers"`
	EmergencyContact string   `json:"emergencyContact"`
	InsuranceDetails string   `json:"insuranceDetails,omitempty"`
	Members          []Member `json:"members"`
}

func (f Family) GetID() string { return f.ID }

func (f Family) ToRecord() browse.Record {
	return browse.Record{
		"id":               f.ID,
		"headName":         f.HeadName,
		"phone":            f.Phone,
		"address":          f.Address,
		"registrationDate": f.RegistrationDate,
		"totalMembers":     f.TotalMembers,
		"emergencyContact": f.EmergencyContact,
		"insuranceDetails": f.InsuranceDetails,
		"healthCounts":     f.HealthCounts(),
	}
}

// HealthCounts tallies members by health status.
func (f Family) HealthCounts() map[HealthStatus]int {
	counts := make(map[HealthStatus]int, len(HealthStatuses))
	for _, m := range f.Members {
		counts[m.HealthStatus]++
	}
	return counts
}

// Filter selects families for the status tab. "all" or the empty string
// selects every family; "needs-attention" selects families with at least
// one fair, poor or critical member.
type Filter string

const (
	FilterAll            Filter = "all"
	FilterNeedsAttention Filter = "needs-attention"
)

// ParseFilter validates a status tab name.
func ParseFilter(s string) (Filter, bool) {
	switch f := Filter(s); {
	case f == "" || f == FilterAll:
		return FilterAll, true
	case f == FilterNeedsAttention:
		return f, true
	case slices.Contains(HealthStatuses, HealthStatus(s)):
		return f, true
	}
	return "", false
}

// Matches reports whether fam belongs on the tab.
func (f Filter) Matches(fam Family) bool {
	if f == FilterAll || f == "" {
		return true
	}
	return slices.ContainsFunc(fam.Members, func(m Member) bool {
		if f == FilterNeedsAttention {
			return m.HealthStatus.NeedsAttention()
		}
		return m.HealthStatus == HealthStatus(f)
	})
}

// MemberForm is the add-member dialog. List fields are comma-separated.
type MemberForm struct {
	Name        *string    `json:"name"`
	Relation    *Relation  `json:"relation" validate:"omitempty,oneof=spouse child parent sibling other"`
	Age         *form.Text `json:"age"`
	Gender      *string    `json:"gender" validate:"omitempty,oneof=male female"`
	BloodGroup  *string    `json:"bloodGroup"`
	Conditions  *form.Text `json:"conditions"`
	Medications *form.Text `json:"medications"`
	Allergies   *form.Text `json:"allergies"`
}

func (f MemberForm) values() map[string]string {
	return map[string]string{"name": form.Value(f.Name)}
}

func (f MemberForm) member(id, today string) Member {
	m := Member{
		ID:           id,
		Name:         form.Value(f.Name),
		Relation:     RelationChild,
		Age:          form.Value(f.Age).Int(),
		Gender:       "male",
		HealthStatus: StatusGood,
		LastCheckup:  today,
		BloodGroup:   form.Value(f.BloodGroup),
		Conditions:   form.Value(f.Conditions).List(),
		Medications:  form.Value(f.Medications).List(),
		Allergies:    form.Value(f.Allergies).List(),
	}
	form.Patch(&m.Relation, f.Relation)
	form.Patch(&m.Gender, f.Gender)
	return m
}

// Statistics backs the cards above the families list.
type Statistics struct {
	TotalFamilies  int `json:"totalFamilies"`
	TotalMembers   int `json:"totalMembers"`
	HealthyMembers int `json:"healthyMembers"`
	NeedsAttention int `json:"needsAttention"`
}
