package user

func Seed() []User {
	return []User{
		{
			ID:          "1",
			Name:        "राम कुमार",
			Email:       "ram.kumar@company.com",
			Phone:       "9876543210",
			Role:        RoleEmployee,
			Avatar:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
			EmployeeID:  "EMP001",
			Department:  "IT",
			JoiningDate: "2022-01-15",
		},
		{
			ID:          "2",
			Name:        "सुनीता देवी",
			Email:       "sunita.devi@company.com",
			Phone:       "8765432109",
			Role:        RoleEmployee,
			Avatar:      "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=100&h=100&fit=crop&crop=face",
			EmployeeID:  "EMP002",
			Department:  "HR",
			JoiningDate: "2021-06-10",
		},
		{
			ID:          "3",
			Name:        "अमित शर्मा",
			Email:       "amit.sharma@company.com",
			Phone:       "7654321098",
			Role:        RoleAdmin,
			Avatar:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			EmployeeID:  "EMP003",
			Department:  "Admin",
			JoiningDate: "2020-03-20",
		},
		{
			ID:          "4",
			Name:        "प्रिया गुप्ता",
			Email:       "priya.gupta@company.com",
			Phone:       "6543210987",
			Role:        RoleEmployee,
			Avatar:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
			EmployeeID:  "EMP004",
			Department:  "Finance",
			JoiningDate: "2023-02-05",
		},
	}
}
