package healthrecord

import (
	"encoding/json"
	"testing"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		weight, height, want float64
	}{
		{70, 175, 22.9},
		{65, 160, 25.4},
		{55, 155, 22.9},
		{70, 0, 0},
	}
	for _, tt := range tests {
		if got := BMI(tt.weight, tt.height); got != tt.want {
			t.Errorf("BMI(%v, %v) = %v, want %v", tt.weight, tt.height, got, tt.want)
		}
	}
}

func TestParseBloodPressure(t *testing.T) {
	if bp := ParseBloodPressure("130/85"); bp != (BloodPressure{130, 85}) {
		t.Errorf("unexpected reading %v", bp)
	}
	if bp := ParseBloodPressure("abc"); bp != (BloodPressure{}) {
		t.Errorf("expected zero reading, got %v", bp)
	}
	if got := (BloodPressure{120, 80}).String(); got != "120/80" {
		t.Errorf("unexpected format %q", got)
	}
}

func TestStatusClassifiers(t *testing.T) {
	bp := []struct {
		in   BloodPressure
		want string
	}{
		{BloodPressure{115, 75}, "Normal"},
		{BloodPressure{120, 80}, "High"},
		{BloodPressure{135, 95}, "High"},
		{BloodPressure{150, 95}, "Very High"},
	}
	for _, tt := range bp {
		if got := BPStatus(tt.in); got != tt.want {
			t.Errorf("BPStatus(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	sugar := map[int]string{98: "Normal", 110: "Pre-diabetic", 140: "Diabetic"}
	for in, want := range sugar {
		if got := SugarStatus(in); got != want {
			t.Errorf("SugarStatus(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestReading_AcceptsObjectAndText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want BloodPressure
	}{
		{"object", `{"bloodPressure":{"systolic":120,"diastolic":80}}`, BloodPressure{120, 80}},
		{"text", `{"bloodPressure":"130/85"}`, BloodPressure{130, 85}},
		{"string halves", `{"bloodPressure":{"systolic":"140","diastolic":"90"}}`, BloodPressure{140, 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Form
			if err := json.Unmarshal([]byte(tt.body), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.BloodPressure == nil || BloodPressure(*f.BloodPressure) != tt.want {
				t.Errorf("got %v, want %v", f.BloodPressure, tt.want)
			}
		})
	}

	var f Form
	if err := json.Unmarshal([]byte(`{"bloodPressure":[120,80]}`), &f); err == nil {
		t.Error("expected an error for an array reading")
	}
}
