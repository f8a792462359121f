package models

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeStatus string

const (
	EmployeeNew        EmployeeStatus = "New"
	EmployeeCurrent    EmployeeStatus = "Current"
	EmployeePromoted   EmployeeStatus = "Promoted"
	EmployeeSecureUser EmployeeStatus = "Secure User"
	EmployeeOffboard   EmployeeStatus = "Offboard"
	EmployeeRehire     EmployeeStatus = "Rehire"
	EmployeeTemp       EmployeeStatus = "Temp"
)

// Employee is the HR identity record. EmployeeCode is the human-facing key
// ("EMP00888"); lookups accept either it or the internal id.
type Employee struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	EmployeeCode string         `json:"employee_code" db:"employee_code"`
	FirstName    string         `json:"first_name" db:"first_name"`
	LastName     string         `json:"last_name" db:"last_name"`
	Email        string         `json:"email" db:"email"`
	PrivateEmail *string        `json:"private_email,omitempty" db:"private_email"`
	Handphone    string         `json:"handphone" db:"handphone"`
	Department   string         `json:"department" db:"department"`
	JobRole      string         `json:"job_role" db:"job_role"`
	Location     string         `json:"location" db:"location"`
	Status       EmployeeStatus `json:"status" db:"status"`
	PortalRole   Role           `json:"portal_role" db:"portal_role"`
	DateJoined   time.Time      `json:"date_joined" db:"date_joined"`
	DateResigned *time.Time     `json:"date_resigned,omitempty" db:"date_resigned"`

	// Reporting officer fields are a denormalized snapshot taken at edit
	// time, not a live relation to another employee row.
	ReportingOfficerName     string `json:"reporting_officer_name" db:"ro_name"`
	ReportingOfficerCode     string `json:"reporting_officer_code" db:"ro_code"`
	ReportingOfficerRole     string `json:"reporting_officer_role" db:"ro_role"`
	ReportingOfficerHp       string `json:"reporting_officer_hp" db:"ro_hp"`
	ReportingOfficerEmail    string `json:"reporting_officer_email" db:"ro_email"`
	ReportingOfficerDivision string `json:"reporting_officer_division" db:"ro_division"`
	ReportingOfficerLocation string `json:"reporting_officer_location" db:"ro_location"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
