package directoryservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"itam/models"
)

type DirectoryRepository interface {
	ResolveEmployee(ctx context.Context, key string) (models.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error)
	InsertEmployee(ctx context.Context, emp models.Employee) (uuid.UUID, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeReq, employeeID uuid.UUID) error
	DeleteEmployee(ctx context.Context, employeeID uuid.UUID) error
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error)
}

type PostgresDirectoryRepository struct {
	DB *sqlx.DB
}

func NewDirectoryRepository(db *sqlx.DB) DirectoryRepository {
	return &PostgresDirectoryRepository{DB: db}
}

// ResolveEmployee accepts the internal id or the human employee code. Every
// engine operation funnels through this single lookup.
func (r *PostgresDirectoryRepository) ResolveEmployee(ctx context.Context, key string) (models.Employee, error) {
	var emp models.Employee
	err := r.DB.GetContext(ctx, &emp, `
		SELECT * FROM employees
		WHERE employee_code = $1 OR id::text = $1
	`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return emp, models.NewNotFoundError("employee", key)
		}
		return emp, fmt.Errorf("failed to resolve employee: %w", err)
	}
	return emp, nil
}

func (r *PostgresDirectoryRepository) GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error) {
	var emp models.Employee
	err := r.DB.GetContext(ctx, &emp, `
		SELECT * FROM employees
		WHERE lower(email) = lower($1)
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return emp, models.NewNotFoundError("employee", email)
		}
		return emp, fmt.Errorf("failed to fetch employee by email: %w", err)
	}
	return emp, nil
}

func (r *PostgresDirectoryRepository) InsertEmployee(ctx context.Context, emp models.Employee) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, `
		INSERT INTO employees (
			employee_code, first_name, last_name, email, private_email,
			handphone, department, job_role, location, status, portal_role,
			date_joined, ro_name, ro_code, ro_role, ro_hp, ro_email,
			ro_division, ro_location
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.PrivateEmail,
		emp.Handphone, emp.Department, emp.JobRole, emp.Location, emp.Status, emp.PortalRole,
		emp.DateJoined, emp.ReportingOfficerName, emp.ReportingOfficerCode,
		emp.ReportingOfficerRole, emp.ReportingOfficerHp, emp.ReportingOfficerEmail,
		emp.ReportingOfficerDivision, emp.ReportingOfficerLocation)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, models.NewValidationError("unique", "employee code or email already registered")
		}
		return uuid.Nil, fmt.Errorf("failed to insert employee: %w", err)
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresDirectoryRepository) UpdateEmployee(ctx context.Context, req UpdateEmployeeReq, employeeID uuid.UUID) error {
	query := `UPDATE employees SET `
	args := []interface{}{}
	argPos := 1

	set := func(column, value string) {
		if value != "" {
			query += fmt.Sprintf("%s = $%d, ", column, argPos)
			args = append(args, value)
			argPos++
		}
	}

	set("first_name", req.FirstName)
	set("last_name", req.LastName)
	set("email", req.Email)
	set("handphone", req.Handphone)
	set("department", req.Department)
	set("job_role", req.JobRole)
	set("location", req.Location)
	set("status", req.Status)
	set("ro_name", req.ReportingOfficerName)
	set("ro_code", req.ReportingOfficerCode)
	set("ro_role", req.ReportingOfficerRole)
	set("ro_hp", req.ReportingOfficerHp)
	set("ro_email", req.ReportingOfficerEmail)
	set("ro_division", req.ReportingOfficerDivision)
	set("ro_location", req.ReportingOfficerLocation)

	query += fmt.Sprintf("updated_at = now() WHERE id = $%d", argPos)
	args = append(args, employeeID)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("employee", employeeID.String())
	}
	return nil
}

// DeleteEmployee is a hard delete; any asset still pointing at the employee
// becomes an unresolved custodian reference, which read paths render as
// "Unknown" rather than failing.
func (r *PostgresDirectoryRepository) DeleteEmployee(ctx context.Context, employeeID uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM employees WHERE id = $1
	`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("employee", employeeID.String())
	}
	return nil
}

func (r *PostgresDirectoryRepository) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error) {
	args := []interface{}{
		!filter.IsSearchText,
		filter.SearchText,
		pq.Array(emptyToNil(filter.Status)),
		pq.Array(emptyToNil(filter.Department)),
		filter.Limit,
		filter.Offset,
	}

	employees := make([]models.Employee, 0)
	err := r.DB.SelectContext(ctx, &employees, `
		SELECT * FROM employees
		WHERE (
			$1 OR (
				first_name ILIKE '%' || $2 || '%'
				OR last_name ILIKE '%' || $2 || '%'
				OR email ILIKE '%' || $2 || '%'
				OR employee_code ILIKE '%' || $2 || '%'
			)
		)
		AND ($3::text[] IS NULL OR status::text = ANY($3))
		AND ($4::text[] IS NULL OR department = ANY($4))
		ORDER BY created_at DESC
		LIMIT $5 OFFSET $6
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func emptyToNil(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
