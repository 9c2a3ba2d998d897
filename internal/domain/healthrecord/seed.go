package healthrecord

func Seed() []Record {
	return []Record{
		{ID: "1", UserID: "1", Date: "2025-07-10", BloodPressure: BloodPressure{120, 80}, SugarLevel: 110, Weight: 70, Height: 175, BMI: 22.9, Notes: "सामान्य स्वास्थ्य", CampID: "3"},
		{ID: "2", UserID: "2", Date: "2025-07-10", BloodPressure: BloodPressure{130, 85}, SugarLevel: 140, Weight: 65, Height: 160, BMI: 25.4, Notes: "हल्का मधुमेह", CampID: "3"},
		{ID: "3", UserID: "1", Date: "2025-06-15", BloodPressure: BloodPressure{115, 75}, SugarLevel: 105, Weight: 69, Height: 175, BMI: 22.5, Notes: "अच्छा स्वास्थ्य"},
		{ID: "4", UserID: "4", Date: "2025-07-12", BloodPressure: BloodPressure{125, 82}, SugarLevel: 98, Weight: 55, Height: 155, BMI: 22.9, Notes: "उत्कृष्ट स्वास्थ्य"},
	}
}
