package camp

import (
	"slices"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/form"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Camp is a health camp held at one location on one day.
type Camp struct {
	ID                    string   `json:"id"`
	Location              string   `json:"location"`
	Date                  string   `json:"date"`
	Time                  string   `json:"time"`
	Doctors               []string `json:"doctors"`
	Status                Status   `json:"status"`
	Beneficiaries         int      `json:"beneficiaries"`
	ExpectedBeneficiaries int      `json:"expectedBeneficiaries"`
	Address               string   `json:"address"`
	Coordinator           string   `json:"coordinator"`
}

func (c Camp) GetID() string { return c.ID }

func (c Camp) ToRecord() browse.Record {
	return browse.Record{
		"id":                    c.ID,
		"location":              c.Location,
		"date":                  c.Date,
		"time":                  c.Time,
		"doctors":               slices.Clone(c.Doctors),
		"status":                string(c.Status),
		"beneficiaries":         c.Beneficiaries,
		"expectedBeneficiaries": c.ExpectedBeneficiaries,
		"address":               c.Address,
		"coordinator":           c.Coordinator,
	}
}

type Form struct {
	Location              *string    `json:"location"`
	Date                  *string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time                  *string    `json:"time"`
	Doctors               *[]string  `json:"doctors"`
	Status                *Status    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Beneficiaries         *form.Text `json:"beneficiaries"`
	ExpectedBeneficiaries *form.Text `json:"expectedBeneficiaries"`
	Address               *string    `json:"address"`
	Coordinator           *string    `json:"coordinator"`
}

func (f Form) values() map[string]string {
	return map[string]string{
		"location": form.Value(f.Location),
		"date":     form.Value(f.Date),
		"address":  form.Value(f.Address),
	}
}

func (f Form) apply(c Camp) Camp {
	form.Patch(&c.Location, f.Location)
	form.Patch(&c.Date, f.Date)
	form.Patch(&c.Time, f.Time)
	form.PatchList(&c.Doctors, f.Doctors)
	form.Patch(&c.Status, f.Status)
	form.Patch(&c.Address, f.Address)
	form.Patch(&c.Coordinator, f.Coordinator)
	if f.Beneficiaries != nil {
		c.Beneficiaries = f.Beneficiaries.Int()
	}
	if f.ExpectedBeneficiaries != nil {
		c.ExpectedBeneficiaries = f.ExpectedBeneficiaries.Int()
	}
	return c
}

type Stats struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	// Beneficiaries counts people served by completed camps.
	Beneficiaries int `json:"beneficiaries"`
}
