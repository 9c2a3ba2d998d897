package scheme

func Seed() []Application {
	return []Application{
		{
			ID:            "1",
			ApplicantName: "राम कुमार",
			EmployeeID:    "EMP001",
			SchemeName:    "आयुष्मान भारत योजना",
			AppliedDate:   "2025-07-01",
			Status:        StatusPending,
			Documents:     []string{"आधार कार्ड", "वेतन प्रमाण पत्र", "चिकित्सा रिपोर्ट"},
			Amount:        50000,
			Remarks:       "दस्तावेज़ सत्यापन के लिए भेजा गया",
		},
		{
			ID:            "2",
			ApplicantName: "सुनीता देवी",
			EmployeeID:    "EMP002",
			SchemeName:    "मातृत्व लाभ योजना",
			AppliedDate:   "2025-06-25",
			Status:        StatusApproved,
			Documents:     []string{"आधार कार्ड", "प्रसव प्रमाण पत्र", "बैंक पासबुक"},
			Amount:        25000,
			ReviewedBy:    "अमित शर्मा",
			ReviewDate:    "2025-07-05",
			Remarks:       "सभी दस्तावेज़ सत्यापित",
		},
		{
			ID:            "3",
			ApplicantName: "प्रिया गुप्ता",
			EmployeeID:    "EMP004",
			SchemeName:    "स्वास्थ्य बीमा योजना",
			AppliedDate:   "2025-06-30",
			Status:        StatusRejected,
			Documents:     []string{"आधार कार्ड", "वेतन प्रमाण पत्र"},
			Amount:        75000,
			ReviewedBy:    "अमित शर्मा",
			ReviewDate:    "2025-07-08",
			Remarks:       "अपूर्ण दस्तावेज़",
		},
		{
			ID:            "4",
			ApplicantName: "राम कुमार",
			EmployeeID:    "EMP001",
			SchemeName:    "दुर्घटना बीमा योजना",
			AppliedDate:   "2025-07-05",
			Status:        StatusPending,
			Documents:     []string{"आधार कार्ड", "चिकित्सा रिपोर्ट", "FIR कॉपी"},
			Amount:        100000,
			Remarks:       "चिकित्सा जांच के लिए भेजा गया",
		},
	}
}
