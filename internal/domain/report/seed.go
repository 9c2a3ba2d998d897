package report

// successRate is the share of applications resolved in the applicant's
// favour over the reporting window.
const successRate = 89

func seedChart() []ChartPoint {
	return []ChartPoint{
		{Month: "फर", Camps: 3, Beneficiaries: 280},
		{Month: "मार्च", Camps: 4, Beneficiaries: 350},
		{Month: "अप्रै", Camps: 2, Beneficiaries: 180},
		{Month: "मई", Camps: 5, Beneficiaries: 420},
		{Month: "जून", Camps: 3, Beneficiaries: 290},
		{Month: "जुला", Camps: 1, Beneficiaries: 95},
	}
}

func seedMonthly() []MonthlyRow {
	return []MonthlyRow{
		{Month: "Jan", Camps: 3, Beneficiaries: 280, Schemes: 12},
		{Month: "Feb", Camps: 4, Beneficiaries: 350, Schemes: 15},
		{Month: "Mar", Camps: 2, Beneficiaries: 180, Schemes: 8},
		{Month: "Apr", Camps: 5, Beneficiaries: 420, Schemes: 20},
		{Month: "May", Camps: 3, Beneficiaries: 290, Schemes: 14},
		{Month: "Jun", Camps: 1, Beneficiaries: 95, Schemes: 6},
	}
}

func seedParticipation() []Participation {
	return []Participation{
		{Scheme: "आयुष्मान भारत योजना", Share: 35, Color: "#0E7DFF"},
		{Scheme: "मातृत्व लाभ योजना", Share: 25, Color: "#10B981"},
		{Scheme: "स्वास्थ्य बीमा योजना", Share: 20, Color: "#F59E0B"},
		{Scheme: "दुर्घटना बीमा योजना", Share: 15, Color: "#EF4444"},
		{Scheme: "अन्य योजनाएं", Share: 5, Color: "#8B5CF6"},
	}
}

func seedHealthTrends() []HealthTrend {
	return []HealthTrend{
		{Issue: "High BP", Count: 45, Color: "#EF4444"},
		{Issue: "Diabetes", Count: 32, Color: "#F59E0B"},
		{Issue: "Heart Disease", Count: 18, Color: "#EC4899"},
		{Issue: "Respiratory", Count: 25, Color: "#6366F1"},
		{Issue: "Eye Problems", Count: 22, Color: "#10B981"},
		{Issue: "Others", Count: 30, Color: "#8B5CF6"},
	}
}
