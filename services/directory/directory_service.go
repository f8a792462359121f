package directoryservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"itam/models"
	"itam/providers/middlewareprovider"
	"itam/utils"
)

type DirectoryService interface {
	Login(ctx context.Context, req LoginReq) (LoginRes, error)
	ResolveEmployee(ctx context.Context, key string) (models.Employee, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeReq) (uuid.UUID, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeReq) error
	DeleteEmployee(ctx context.Context, key string) error
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error)
}

type directoryService struct {
	repo DirectoryRepository
}

func NewDirectoryService(repo DirectoryRepository) DirectoryService {
	return &directoryService{repo: repo}
}

// Login resolves an email to an employee and issues role-scoped tokens.
// Authentication transport beyond the lookup is a collaborator concern.
func (s *directoryService) Login(ctx context.Context, req LoginReq) (LoginRes, error) {
	employee, err := s.repo.GetEmployeeByEmail(ctx, req.Email)
	if err != nil {
		return LoginRes{}, err
	}

	accessToken, err := middlewareprovider.GenerateJWT(employee.ID.String(), string(employee.PortalRole))
	if err != nil {
		return LoginRes{}, err
	}
	refreshToken, err := middlewareprovider.GenerateRefreshToken(employee.ID.String())
	if err != nil {
		return LoginRes{}, err
	}

	utils.Logger.Info("login",
		zap.String("employee_code", employee.EmployeeCode),
		zap.String("role", string(employee.PortalRole)))

	return LoginRes{
		ID:           employee.ID,
		EmployeeCode: employee.EmployeeCode,
		Name:         employee.FullName(),
		Email:        employee.Email,
		Role:         string(employee.PortalRole),
		Department:   employee.Department,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *directoryService) ResolveEmployee(ctx context.Context, key string) (models.Employee, error) {
	return s.repo.ResolveEmployee(ctx, key)
}

func (s *directoryService) CreateEmployee(ctx context.Context, req CreateEmployeeReq) (uuid.UUID, error) {
	if !isValidEmployeeStatus(req.Status) {
		return uuid.Nil, models.NewValidationError("status", "%q is not a valid employee status", req.Status)
	}

	role := models.EmployeeRole
	if req.PortalRole != "" {
		if !models.IsValidRole(req.PortalRole) {
			return uuid.Nil, models.NewValidationError("role", "%q is not a valid portal role", req.PortalRole)
		}
		role = models.Role(req.PortalRole)
	}

	dateJoined, err := time.Parse("2006-01-02", req.DateJoined)
	if err != nil {
		return uuid.Nil, models.NewValidationError("date-format", "date joined must be YYYY-MM-DD")
	}

	emp := models.Employee{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Handphone:    req.Handphone,
		Department:   req.Department,
		JobRole:      req.JobRole,
		Location:     req.Location,
		Status:       models.EmployeeStatus(req.Status),
		PortalRole:   role,
		DateJoined:   dateJoined,

		ReportingOfficerName:     req.ReportingOfficerName,
		ReportingOfficerCode:     req.ReportingOfficerCode,
		ReportingOfficerRole:     req.ReportingOfficerRole,
		ReportingOfficerHp:       req.ReportingOfficerHp,
		ReportingOfficerEmail:    req.ReportingOfficerEmail,
		ReportingOfficerDivision: req.ReportingOfficerDivision,
		ReportingOfficerLocation: req.ReportingOfficerLocation,
	}
	if req.PrivateEmail != "" {
		emp.PrivateEmail = &req.PrivateEmail
	}

	id, err := s.repo.InsertEmployee(ctx, emp)
	if err != nil {
		return uuid.Nil, err
	}

	utils.Logger.Info("employee created",
		zap.String("employee_id", id.String()),
		zap.String("employee_code", req.EmployeeCode))
	return id, nil
}

func (s *directoryService) UpdateEmployee(ctx context.Context, req UpdateEmployeeReq) error {
	if req.Status != "" && !isValidEmployeeStatus(req.Status) {
		return models.NewValidationError("status", "%q is not a valid employee status", req.Status)
	}

	employee, err := s.repo.ResolveEmployee(ctx, req.EmployeeKey)
	if err != nil {
		return err
	}
	return s.repo.UpdateEmployee(ctx, req, employee.ID)
}

func (s *directoryService) DeleteEmployee(ctx context.Context, key string) error {
	employee, err := s.repo.ResolveEmployee(ctx, key)
	if err != nil {
		return err
	}
	return s.repo.DeleteEmployee(ctx, employee.ID)
}

func (s *directoryService) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error) {
	return s.repo.ListEmployees(ctx, filter)
}

func isValidEmployeeStatus(s string) bool {
	switch models.EmployeeStatus(s) {
	case models.EmployeeNew, models.EmployeeCurrent, models.EmployeePromoted,
		models.EmployeeSecureUser, models.EmployeeOffboard, models.EmployeeRehire,
		models.EmployeeTemp:
		return true
	}
	return false
}
