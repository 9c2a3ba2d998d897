package doctor

import (
	"slices"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/form"
)

// Specialties offered by the add/edit form.
var Specialties = []string{
	"General Medicine",
	"Cardiology",
	"Orthopedics",
	"Gynecology",
	"Pediatrics",
	"Dermatology",
	"Ophthalmology",
	"ENT",
	"Neurology",
	"Psychiatry",
}

// Doctor is a medical professional who can be assigned to camps.
type Doctor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Avatar        string   `json:"avatar,omitempty"`
	Experience    int      `json:"experience"`
	Qualification string   `json:"qualification"`
	AssignedCamps []string `json:"assignedCamps"`
}

func (d Doctor) GetID() string { return d.ID }

func (d Doctor) ToRecord() browse.Record {
	return browse.Record{
		"id":            d.ID,
		"name":          d.Name,
		"specialty":     d.Specialty,
		"phone":         d.Phone,
		"email":         d.Email,
		"avatar":        d.Avatar,
		"experience":    d.Experience,
		"qualification": d.Qualification,
		"assignedCamps": slices.Clone(d.AssignedCamps),
	}
}

// Form is the add/edit payload. Absent fields are left untouched by an
// update. Experience is typed text and coerced leniently.
type Form struct {
	Name          *string    `json:"name"`
	Specialty     *string    `json:"specialty"`
	Phone         *string    `json:"phone"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Avatar        *string    `json:"avatar"`
	Experience    *form.Text `json:"experience"`
	Qualification *string    `json:"qualification"`
	AssignedCamps *[]string  `json:"assignedCamps"`
}

func (f Form) values() map[string]string {
	return map[string]string{
		"name":      form.Value(f.Name),
		"specialty": form.Value(f.Specialty),
		"phone":     form.Value(f.Phone),
		"email":     form.Value(f.Email),
	}
}

// apply patches d with every supplied field.
func (f Form) apply(d Doctor) Doctor {
	form.Patch(&d.Name, f.Name)
	form.Patch(&d.Specialty, f.Specialty)
	form.Patch(&d.Phone, f.Phone)
	form.Patch(&d.Email, f.Email)
	form.Patch(&d.Avatar, f.Avatar)
	form.Patch(&d.Qualification, f.Qualification)
	if f.Experience != nil {
		d.Experience = f.Experience.Int()
	}
	form.PatchList(&d.AssignedCamps, f.AssignedCamps)
	return d
}

// Stats are the summary cards above the doctors table.
type Stats struct {
	Total         int `json:"total"`
	AvgExperience int `json:"avgExperience"`
	Specialties   int `json:"specialties"`
	Assigned      int `json:"assigned"`
}
