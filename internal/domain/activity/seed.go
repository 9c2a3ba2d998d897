package activity

// Seed returns the starting log, oldest first.
func Seed() []Entry {
	return []Entry{
		{ID: "5", Action: "शिविर निर्धारित समय", User: "अमित शर्मा", Timestamp: "2025-07-11 10:00 AM", Details: "बिलासपुर कार्यालय में नया शिविर निर्धारित"},
		{ID: "4", Action: "स्वास्थ्य रिकॉर्ड अपडेट", User: "डॉ. सुनीता सिंह", Timestamp: "2025-07-12 04:45 PM", Details: "प्रिया गुप्ता का स्वास्थ्य रिकॉर्ड अपडेट किया गया"},
		{ID: "3", Action: "नए डॉक्टर जोड़े गए", User: "व्यवस्थापक", Timestamp: "2025-07-13 11:30 AM", Details: "डॉ. मीना पटेल को टीम में शामिल किया गया"},
		{ID: "2", Action: "योजना स्वीकृत", User: "अमित शर्मा", Timestamp: "2025-07-14 02:15 PM", Details: "सुनीता देवी की मातृत्व लाभ योजना अनुमोदित"},
		{ID: "1", Action: "शिविर पूर्ण", User: "डॉ. राजेश वर्मा", Timestamp: "2025-07-15 03:30 PM", Details: "दुर्ग केंद्र में स्वास्थ्य शिविर पूर्ण"},
	}
}
