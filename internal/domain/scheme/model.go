package scheme

import (
	"slices"

	"github.com/Rhymond/go-money"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Statuses in tab order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// ParseStatus accepts a tab name. The empty string and "all" select every
// status and come back as "".
func ParseStatus(s string) (Status, bool) {
	if s == "" || s == "all" {
		return "", true
	}
	st := Status(s)
	return st, slices.Contains(Statuses, st)
}

// Application is an employee's request for a government scheme benefit.
type Application struct {
	ID            string   `json:"id"`
	ApplicantName string   `json:"applicantName"`
	EmployeeID    string   `json:"employeeId"`
	SchemeName    string   `json:"schemeName"`
	AppliedDate   string   `json:"appliedDate"`
	Status        Status   `json:"status"`
	Documents     []string `json:"documents"`
	// Amount is in whole rupees.
	Amount     int64  `json:"amount"`
	ReviewedBy string `json:"reviewedBy,omitempty"`
	ReviewDate string `json:"reviewDate,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
}

func (a Application) GetID() string { return a.ID }

func (a Application) ToRecord() browse.Record {
	return browse.Record{
		"id":            a.ID,
		"applicantName": a.ApplicantName,
		"employeeId":    a.EmployeeID,
		"schemeName":    a.SchemeName,
		"appliedDate":   a.AppliedDate,
		"status":        string(a.Status),
		"documents":     slices.Clone(a.Documents),
		"amount":        a.Amount,
		"reviewedBy":    a.ReviewedBy,
		"reviewDate":    a.ReviewDate,
		"remarks":       a.Remarks,
	}
}

// Rupees converts a whole-rupee amount to money.
func Rupees(amount int64) *money.Money {
	return money.New(amount*100, money.INR)
}

// Decision is a reviewer's verdict on a pending application.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) status() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

func (d Decision) remarks() string {
	if d == DecisionApprove {
		return "सभी दस्तावेज़ सत्यापित और अनुमोदित"
	}
	return "दस्तावेज़ में कमी या अपूर्ण जानकारी"
}

// Summary backs the tab counts and the cards above the schemes table.
type Summary struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	// ApprovedAmount is the sum of approved applications in rupees.
	ApprovedAmount  int64  `json:"approvedAmount"`
	ApprovedDisplay string `json:"approvedDisplay"`
}
