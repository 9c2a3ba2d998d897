package doctor

const (
	avatarMale   = "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=100&h=100&fit=crop&crop=face"
	avatarFemale = "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=100&h=100&fit=crop&crop=face"
)

func Seed() []Doctor {
	return []Doctor{
		{
			ID:            "1",
			Name:          "डॉ. राजेश वर्मा",
			Specialty:     "General Medicine",
			Phone:         "9876543210",
			Email:         "dr.rajesh@hospital.com",
			Avatar:        avatarMale,
			Experience:    15,
			Qualification: "MBBS, MD",
			AssignedCamps: []string{"1", "3"},
		},
		{
			ID:            "2",
			Name:          "डॉ. सुनीता सिंह",
			Specialty:     "Cardiology",
			Phone:         "8765432109",
			Email:         "dr.sunita@hospital.com",
			Avatar:        avatarFemale,
			Experience:    12,
			Qualification: "MBBS, DM (Cardiology)",
			AssignedCamps: []string{"2", "4"},
		},
		{
			ID:            "3",
			Name:          "डॉ. अनिल कुमार",
			Specialty:     "Orthopedics",
			Phone:         "7654321098",
			Email:         "dr.anil@hospital.com",
			Avatar:        "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=100&h=100&fit=crop&crop=face",
			Experience:    18,
			Qualification: "MBBS, MS (Ortho)",
			AssignedCamps: []string{"1", "2"},
		},
		{
			ID:            "4",
			Name:          "डॉ. मीना पटेल",
			Specialty:     "Gynecology",
			Phone:         "6543210987",
			Email:         "dr.meena@hospital.com",
			Avatar:        "https://images.unsplash.com/photo-1594824804732-ca58f6520cd4?w=100&h=100&fit=crop&crop=face",
			Experience:    10,
			Qualification: "MBBS, MS (Gynec)",
			AssignedCamps: []string{"3", "4"},
		},
	}
}
