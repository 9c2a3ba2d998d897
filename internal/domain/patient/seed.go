package patient

func Seed() []Patient {
	return []Patient{
		{ID: "1", Name: "राम कुमार", Age: 45, Gender: "male", Phone: "9876543210", Address: "दुर्ग, छत्तीसगढ़", LastVisit: "2025-07-10", HealthStatus: StatusFair, FamilyMembers: 4},
		{ID: "2", Name: "सुनीता देवी", Age: 38, Gender: "female", Phone: "8765432109", Address: "बिलासपुर, छत्तीसगढ़", LastVisit: "2025-07-12", HealthStatus: StatusGood, FamilyMembers: 3},
		{ID: "3", Name: "मोहन लाल", Age: 62, Gender: "male", Phone: "7654321098", Address: "रायपुर, छत्तीसगढ़", LastVisit: "2025-07-08", HealthStatus: StatusPoor, FamilyMembers: 2},
		{ID: "4", Name: "प्रिया गुप्ता", Age: 29, Gender: "female", Phone: "6543210987", Address: "कोरबा, छत्तीसगढ़", LastVisit: "2025-07-14", HealthStatus: StatusGood, FamilyMembers: 5},
	}
}
