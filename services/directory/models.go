package directoryservice

import (
	"github.com/google/uuid"
)

type LoginReq struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginRes struct {
	ID           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

type CreateEmployeeReq struct {
	EmployeeCode string `json:"employee_code" validate:"required"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PrivateEmail string `json:"private_email" validate:"omitempty,email"`
	Handphone    string `json:"handphone"`
	Department   string `json:"department"`
	JobRole      string `json:"job_role"`
	Location     string `json:"location"`
	Status       string `json:"status" validate:"required"`
	PortalRole   string `json:"portal_role"`
	DateJoined   string `json:"date_joined" validate:"required"` // YYYY-MM-DD

	ReportingOfficerName     string `json:"reporting_officer_name"`
	ReportingOfficerCode     string `json:"reporting_officer_code"`
	ReportingOfficerRole     string `json:"reporting_officer_role"`
	ReportingOfficerHp       string `json:"reporting_officer_hp"`
	ReportingOfficerEmail    string `json:"reporting_officer_email"`
	ReportingOfficerDivision string `json:"reporting_officer_division"`
	ReportingOfficerLocation string `json:"reporting_officer_location"`
}

type UpdateEmployeeReq struct {
	EmployeeKey string `json:"employee_key" validate:"required"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Handphone   string `json:"handphone,omitempty"`
	Department  string `json:"department,omitempty"`
	JobRole     string `json:"job_role,omitempty"`
	Location    string `json:"location,omitempty"`
	Status      string `json:"status,omitempty"`

	ReportingOfficerName     string `json:"reporting_officer_name,omitempty"`
	ReportingOfficerCode     string `json:"reporting_officer_code,omitempty"`
	ReportingOfficerRole     string `json:"reporting_officer_role,omitempty"`
	ReportingOfficerHp       string `json:"reporting_officer_hp,omitempty"`
	ReportingOfficerEmail    string `json:"reporting_officer_email,omitempty"`
	ReportingOfficerDivision string `json:"reporting_officer_division,omitempty"`
	ReportingOfficerLocation string `json:"reporting_officer_location,omitempty"`
}

type EmployeeFilter struct {
	SearchText   string
	IsSearchText bool
	Status       []string
	Department   []string
	Limit        int
	Offset       int
}
