package healthrecord

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/form"
)

type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

func (bp BloodPressure) String() string {
	return fmt.Sprintf("%d/%d", bp.Systolic, bp.Diastolic)
}

// ParseBloodPressure reads "120/80". Either half that is missing or not a
// number reads as 0.
func ParseBloodPressure(s string) BloodPressure {
	sys, dia, _ := strings.Cut(s, "/")
	return BloodPressure{Systolic: form.Int(sys), Diastolic: form.Int(dia)}
}

// Reading is a submitted blood pressure. It accepts the object shape a
// record is served in as well as the "120/80" text of the entry form.
type Reading BloodPressure

func (r *Reading) UnmarshalJSON(b []byte) error {
	var t form.Text
	if err := t.UnmarshalJSON(b); err == nil {
		*r = Reading(ParseBloodPressure(t.String()))
		return nil
	}
	var obj struct {
		Systolic  form.Text `json:"systolic"`
		Diastolic form.Text `json:"diastolic"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("blood pressure must be \"sys/dia\" or {systolic, diastolic}: %w", err)
	}
	*r = Reading{Systolic: obj.Systolic.Int(), Diastolic: obj.Diastolic.Int()}
	return nil
}

// Record is one checkup result for a user.
type Record struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Date          string        `json:"date"`
	BloodPressure BloodPressure `json:"bloodPressure"`
	SugarLevel    int           `json:"sugarLevel"`
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	BMI           float64       `json:"bmi"`
	Notes         string        `json:"notes,omitempty"`
	CampID        string        `json:"campId,omitempty"`
}

func (r Record) GetID() string { return r.ID }

func (r Record) ToRecord() browse.Record {
	return browse.Record{
		"id":     r.ID,
		"userId": r.UserID,
		"date":   r.Date,
		"bloodPressure": map[string]any{
			"systolic":  r.BloodPressure.Systolic,
			"diastolic": r.BloodPressure.Diastolic,
		},
		"sugarLevel": r.SugarLevel,
		"weight":     r.Weight,
		"height":     r.Height,
		"bmi":        r.BMI,
		"notes":      r.Notes,
		"campId":     r.CampID,
	}
}

// BMI is weight in kilograms over height in metres squared, rounded to one
// decimal place. It is 0 when height is unknown.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// BPStatus classifies a blood pressure reading.
func BPStatus(bp BloodPressure) string {
	switch {
	case bp.Systolic < 120 && bp.Diastolic < 80:
		return "Normal"
	case bp.Systolic < 140 || bp.Diastolic < 90:
		return "High"
	}
	return "Very High"
}

// SugarStatus classifies a fasting sugar level in mg/dL.
func SugarStatus(sugar int) string {
	switch {
	case sugar < 100:
		return "Normal"
	case sugar < 126:
		return "Pre-diabetic"
	}
	return "Diabetic"
}

type Form struct {
	UserID        *string    `json:"userId"`
	Date          *string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	BloodPressure *Reading   `json:"bloodPressure"`
	SugarLevel    *form.Text `json:"sugarLevel"`
	Weight        *form.Text `json:"weight"`
	Height        *form.Text `json:"height"`
	BMI           *form.Text `json:"bmi"`
	Notes         *string    `json:"notes"`
	CampID        *string    `json:"campId"`
}

func (f Form) values() map[string]string {
	return map[string]string{
		"userId": form.Value(f.UserID),
		"date":   form.Value(f.Date),
	}
}

// apply patches r. BMI is derived from weight and height unless the form
// supplies one.
func (f Form) apply(r Record) Record {
	form.Patch(&r.UserID, f.UserID)
	form.Patch(&r.Date, f.Date)
	form.Patch(&r.Notes, f.Notes)
	form.Patch(&r.CampID, f.CampID)
	if f.BloodPressure != nil {
		r.BloodPressure = BloodPressure(*f.BloodPressure)
	}
	if f.SugarLevel != nil {
		r.SugarLevel = f.SugarLevel.Int()
	}
	if f.Weight != nil {
		r.Weight = f.Weight.Float()
	}
	if f.Height != nil {
		r.Height = f.Height.Float()
	}

	switch {
	case f.BMI != nil && strings.TrimSpace(f.BMI.String()) != "":
		r.BMI = f.BMI.Float()
	case f.Weight != nil || f.Height != nil:
		r.BMI = BMI(r.Weight, r.Height)
	}
	return r
}

// Overview counts users by the blood pressure status of their latest
// record.
type Overview struct {
	Records  int            `json:"records"`
	Users    int            `json:"users"`
	BPStatus map[string]int `json:"bpStatus"`
	Sugar    map[string]int `json:"sugarStatus"`
	AvgBMI   float64        `json:"avgBmi"`
}
