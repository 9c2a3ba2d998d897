package camp

func Seed() []Camp {
	return []Camp{
		{
			ID:                    "1",
			Location:              "रायपुर कार्यालय",
			Date:                  "2025-07-18",
			Time:                  "09:00 AM - 05:00 PM",
			Doctors:               []string{"1", "3"},
			Status:                StatusScheduled,
			Beneficiaries:         0,
			ExpectedBeneficiaries: 150,
			Address:               "सेक्टर 24, नया रायपुर, छत्तीसगढ़",
			Coordinator:           "अमित शर्मा",
		},
		{
			ID:                    "2",
			Location:              "भिलाई शाखा",
			Date:                  "2025-07-20",
			Time:                  "10:00 AM - 04:00 PM",
			Doctors:               []string{"2", "3"},
			Status:                StatusScheduled,
			Beneficiaries:         0,
			ExpectedBeneficiaries: 120,
			Address:               "सेक्टर 7, भिलाई, छत्तीसगढ़",
			Coordinator:           "सुनीता देवी",
		},
		{
			ID:                    "3",
			Location:              "दुर्ग केंद्र",
			Date:                  "2025-07-15",
			Time:                  "08:30 AM - 03:30 PM",
			Doctors:               []string{"1", "4"},
			Status:                StatusCompleted,
			Beneficiaries:         95,
			ExpectedBeneficiaries: 100,
			Address:               "सिविल लाइन्स, दुर्ग, छत्तीसगढ़",
			Coordinator:           "राम कुमार",
		},
		{
			ID:                    "4",
			Location:              "बिलासपुर कार्यालय",
			Date:                  "2025-07-22",
			Time:                  "09:30 AM - 04:30 PM",
			Doctors:               []string{"2", "4"},
			Status:                StatusScheduled,
			Beneficiaries:         0,
			ExpectedBeneficiaries: 180,
			Address:               "लिंक रोड, बिलासपुर, छत्तीसगढ़",
			Coordinator:           "प्रिया गुप्ता",
		},
	}
}
