package family

func Seed() []Family {
	return []Family{
		{
			ID:               "F001",
			HeadName:         "राम कुमार",
			Phone:            "9876543210",
			Address:          "दुर्ग, छत्तीसगढ़",
			RegistrationDate: "2025-01-15",
			TotalMembers:     4,
			EmergencyContact: "9876543211",
			InsuranceDetails: "CGHS - 123456789",
			Members: []Member{
				{
					ID:              "M001",
					Name:            "राम कुमार",
					Relation:        RelationSpouse,
					Age:             45,
					Gender:          "male",
					HealthStatus:    StatusGood,
					LastCheckup:     "2025-07-10",
					Conditions:      []string{"मधुमेह"},
					Medications:     []string{"मेटफॉर्मिन 500mg"},
					NextAppointment: "2025-08-10",
					BloodGroup:      "B+",
					Allergies:       []string{},
				},
				{
					ID:           "M002",
					Name:         "सुनीता कुमार",
					Relation:     RelationSpouse,
					Age:          40,
					Gender:       "female",
					HealthStatus: StatusExcellent,
					LastCheckup:  "2025-07-12",
					Conditions:   []string{},
					Medications:  []string{},
					BloodGroup:   "O+",
					Allergies:    []string{"पेनिसिलिन"},
				},
				{
					ID:           "M003",
					Name:         "आर्यन कुमार",
					Relation:     RelationChild,
					Age:          15,
					Gender:       "male",
					HealthStatus: StatusGood,
					LastCheckup:  "2025-06-20",
					Conditions:   []string{"अस्थमा"},
					Medications:  []string{"इन्हेलर"},
					BloodGroup:   "B+",
					Allergies:    []string{"धूल"},
				},
				{
					ID:           "M004",
					Name:         "प्रिया कुमार",
					Relation:     RelationChild,
					Age:          12,
					Gender:       "female",
					HealthStatus: StatusExcellent,
					LastCheckup:  "2025-07-05",
					Conditions:   []string{},
					Medications:  []string{},
					BloodGroup:   "O+",
					Allergies:    []string{},
				},
			},
		},
		{
			ID:               "F002",
			HeadName:         "मोहन लाल",
			Phone:            "8765432109",
			Address:          "रायपुर, छत्तीसगढ़",
			RegistrationDate: "2025-02-20",
			TotalMembers:     3,
			EmergencyContact: "8765432108",
			Members: []Member{
				{
					ID:              "M005",
					Name:            "मोहन लाल",
					Relation:        RelationSpouse,
					Age:             62,
					Gender:          "male",
					HealthStatus:    StatusFair,
					LastCheckup:     "2025-07-08",
					Conditions:      []string{"उच्च रक्तचाप", "गठिया"},
					Medications:     []string{"एम्लोडिपाइन 5mg", "डिक्लोफेनाक"},
					NextAppointment: "2025-07-22",
					BloodGroup:      "A+",
					Allergies:       []string{},
				},
				{
					ID:           "M006",
					Name:         "गीता देवी",
					Relation:     RelationSpouse,
					Age:          58,
					Gender:       "female",
					HealthStatus: StatusGood,
					LastCheckup:  "2025-07-01",
					Conditions:   []string{"मधुमेह"},
					Medications:  []string{"मेटफॉर्मिन 850mg"},
					BloodGroup:   "A+",
					Allergies:    []string{"सल्फा ड्रग्स"},
				},
				{
					ID:           "M007",
					Name:         "राहुल लाल",
					Relation:     RelationChild,
					Age:          28,
					Gender:       "male",
					HealthStatus: StatusExcellent,
					LastCheckup:  "2025-06-15",
					Conditions:   []string{},
					Medications:  []string{},
					BloodGroup:   "A+",
					Allergies:    []string{},
				},
			},
		},
		{
			ID:               "F003",
			HeadName:         "सुनीता देवी",
			Phone:            "7654321098",
			Address:          "बिलासपुर, छत्तीसगढ़",
			RegistrationDate: "2025-03-10",
			TotalMembers:     5,
			EmergencyContact: "7654321097",
			InsuranceDetails: "ESI - 987654321",
			Members: []Member{
				{
					ID:              "M008",
					Name:            "सुनीता देवी",
					Relation:        RelationSpouse,
					Age:             35,
					Gender:          "female",
					HealthStatus:    StatusGood,
					LastCheckup:     "2025-07-14",
					Conditions:      []string{},
					Medications:     []string{},
					NextAppointment: "2025-08-14",
					BloodGroup:      "AB+",
					Allergies:       []string{},
				},
				{
					ID:           "M009",
					Name:         "विकास गुप्ता",
					Relation:     RelationSpouse,
					Age:          38,
					Gender:       "male",
					HealthStatus: StatusFair,
					LastCheckup:  "2025-07-11",
					Conditions:   []string{"उच्च रक्तचाप"},
					Medications:  []string{"लोसार्टन 50mg"},
					BloodGroup:   "AB+",
					Allergies:    []string{"आयोडीन"},
				},
				{
					ID:           "M010",
					Name:         "अनिका गुप्ता",
					Relation:     RelationChild,
					Age:          10,
					Gender:       "female",
					HealthStatus: StatusExcellent,
					LastCheckup:  "2025-07-13",
					Conditions:   []string{},
					Medications:  []string{},
					BloodGroup:   "AB+",
					Allergies:    []string{},
				},
				{
					ID:           "M011",
					Name:         "आदित्य गुप्ता",
					Relation:     RelationChild,
					Age:          7,
					Gender:       "male",
					HealthStatus: StatusGood,
					LastCheckup:  "2025-07-13",
					Conditions:   []string{"एलर्जिक राइनाइटिस"},
					Medications:  []string{"सेटिरिजिन"},
					BloodGroup:   "AB+",
					Allergies:    []string{"पराग"},
				},
				{
					ID:              "M012",
					Name:            "कमला देवी",
					Relation:        RelationParent,
					Age:             68,
					Gender:          "female",
					HealthStatus:    StatusPoor,
					LastCheckup:     "2025-07-09",
					Conditions:      []string{"मधुमेह", "गठिया", "कमजोर दृष्टि"},
					Medications:     []string{"मेटफॉर्मिन 1000mg", "डिक्लोफेनाक", "आई ड्रॉप्स"},
					NextAppointment: "2025-07-20",
					BloodGroup:      "O-",
					Allergies:       []string{"पेनिसिलिन"},
				},
			},
		},
		{
			ID:               "F004",
			HeadName:         "अजय सिंह",
			Phone:            "6543210987",
			Address:          "कोरबा, छत्तीसगढ़",
			RegistrationDate: "2025-04-25",
			TotalMembers:     3,
			EmergencyContact: "6543210986",
			Members: []Member{
				{
					ID:              "M013",
					Name:            "अजय सिंह",
					Relation:        RelationSpouse,
					Age:             42,
					Gender:          "male",
					HealthStatus:    StatusCritical,
					LastCheckup:     "2025-07-15",
					Conditions:      []string{"हृदय रोग", "मधुमेह", "उच्च रक्तचाप"},
					Medications:     []string{"एटोरवास्टेटिन", "मेटोप्रोलोल", "इंसुलिन"},
					NextAppointment: "2025-07-18",
					BloodGroup:      "B-",
					Allergies:       []string{},
				},
				{
					ID:           "M014",
					Name:         "प्रिया सिंह",
					Relation:     RelationSpouse,
					Age:          38,
					Gender:       "female",
					HealthStatus: StatusGood,
					LastCheckup:  "2025-07-12",
					Conditions:   []string{"एनीमिया"},
					Medications:  []string{"आयरन टैबलेट"},
					BloodGroup:   "B+",
					Allergies:    []string{},
				},
				{
					ID:           "M015",
					Name:         "रोहित सिंह",
					Relation:     RelationChild,
					Age:          16,
					Gender:       "male",
					HealthStatus: StatusExcellent,
					LastCheckup:  "2025-06-28",
					Conditions:   []string{},
					Medications:  []string{},
					BloodGroup:   "B+",
					Allergies:    []string{"मूंगफली"},
				},
			},
		},
	}
}
