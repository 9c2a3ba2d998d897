package user

import (
	"strings"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/form"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// User is an employee enrolled in the health programme.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        Role   `json:"role"`
	Avatar      string `json:"avatar,omitempty"`
	EmployeeID  string `json:"employeeId"`
	Department  string `json:"department"`
	JoiningDate string `json:"joiningDate"`
}

func (u User) GetID() string { return u.ID }

func (u User) ToRecord() browse.Record {
	return browse.Record{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"phone":       u.Phone,
		"role":        string(u.Role),
		"avatar":      u.Avatar,
		"employeeId":  u.EmployeeID,
		"department":  u.Department,
		"joiningDate": u.JoiningDate,
	}
}

// CSVRow is one line of the employee export.
type CSVRow struct {
	EmployeeID  string `csv:"Employee ID"`
	Name        string `csv:"Name"`
	Email       string `csv:"Email"`
	Phone       string `csv:"Phone"`
	Department  string `csv:"Department"`
	Role        string `csv:"Role"`
	JoiningDate string `csv:"Joining Date"`
	Records     int    `csv:"Health Records"`
}

// ImportRow is one line of an employee import. Its columns match the export,
// so an exported file can be edited and uploaded again.
type ImportRow struct {
	EmployeeID  string `csv:"Employee ID"`
	Name        string `csv:"Name"`
	Email       string `csv:"Email"`
	Phone       string `csv:"Phone"`
	Department  string `csv:"Department"`
	Role        string `csv:"Role"`
	JoiningDate string `csv:"Joining Date"`
}

func (r ImportRow) form() Form {
	var f Form
	set := func(dst **string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = &v
		}
	}
	set(&f.Name, r.Name)
	set(&f.Email, r.Email)
	set(&f.Phone, r.Phone)
	set(&f.EmployeeID, r.EmployeeID)
	set(&f.Department, r.Department)
	set(&f.JoiningDate, r.JoiningDate)
	if role := Role(strings.ToLower(strings.TrimSpace(r.Role))); role != "" {
		f.Role = &role
	}
	return f
}

// ImportResult reports a bulk import. Lines are numbered from the header.
type ImportResult struct {
	Created []User        `json:"created"`
	Skipped []ImportError `json:"skipped"`
}

type ImportError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type Form struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Role        *Role   `json:"role" validate:"omitempty,oneof=employee admin"`
	Avatar      *string `json:"avatar"`
	EmployeeID  *string `json:"employeeId"`
	Department  *string `json:"department"`
	JoiningDate *string `json:"joiningDate" validate:"omitempty,datetime=2006-01-02"`
}

func (f Form) values() map[string]string {
	return map[string]string{
		"name":       form.Value(f.Name),
		"email":      form.Value(f.Email),
		"employeeId": form.Value(f.EmployeeID),
	}
}

func (f Form) apply(u User) User {
	form.Patch(&u.Name, f.Name)
	form.Patch(&u.Email, f.Email)
	form.Patch(&u.Phone, f.Phone)
	form.Patch(&u.Role, f.Role)
	form.Patch(&u.Avatar, f.Avatar)
	form.Patch(&u.EmployeeID, f.EmployeeID)
	form.Patch(&u.Department, f.Department)
	form.Patch(&u.JoiningDate, f.JoiningDate)
	return u
}

type Stats struct {
	Total       int `json:"total"`
	Departments int `json:"departments"`
	Admins      int `json:"admins"`
}
