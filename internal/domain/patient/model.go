package patient

import "github.com/healthcamp/dashboard/internal/platform/browse"

type HealthStatus string

const (
	StatusGood HealthStatus = "good"
	StatusFair HealthStatus = "fair"
	StatusPoor HealthStatus = "poor"
)

func (s HealthStatus) Label() string {
	switch s {
	case StatusGood:
		return "अच्छी"
	case StatusFair:
		return "सामान्य"
	case StatusPoor:
		return "खराब"
	}
	return "अज्ञात"
}

// Patient is a person seen by doctors at the camps.
type Patient struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Age           int          `json:"age"`
	Gender        string       `json:"gender"`
	Phone         string       `json:"phone"`
	Address       string       `json:"address"`
	LastVisit     string       `json:"lastVisit"`
	HealthStatus  HealthStatus `json:"healthStatus"`
	FamilyMembers int          `json:"familyMembers"`
}

func (p Patient) GetID() string { return p.ID }

func (p Patient) ToRecord() browse.Record {
	return browse.Record{
		"id":            p.ID,
		"name":          p.Name,
		"age":           p.Age,
		"gender":        p.Gender,
		"phone":         p.Phone,
		"address":       p.Address,
		"lastVisit":     p.LastVisit,
		"healthStatus":  string(p.HealthStatus),
		"familyMembers": p.FamilyMembers,
	}
}

// Summary backs the cards above the patient list.
type Summary struct {
	Total         int                  `json:"total"`
	ByStatus      map[HealthStatus]int `json:"byStatus"`
	Healthy       int                  `json:"healthy"`
	SeenThisWeek  int                  `json:"seenThisWeek"`
	FamilyMembers int                  `json:"familyMembers"`
}
