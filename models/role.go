package models

type Role string

const (
	HRRole       Role = "HR"
	ITRole       Role = "IT"
	EmployeeRole Role = "EMPLOYEE"
	// PowerITRole is the superuser, union of HR and IT capabilities.
	PowerITRole Role = "PowerIT"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case HRRole, ITRole, EmployeeRole, PowerITRole:
		return true
	}
	return false
}
