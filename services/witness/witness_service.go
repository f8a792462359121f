package witnessservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"itam/models"
)

type CreateEngineerReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type WitnessRepository interface {
	InsertEngineer(ctx context.Context, eng models.ITEngineer) (uuid.UUID, error)
	GetEngineerByID(ctx context.Context, id uuid.UUID) (models.ITEngineer, error)
	SetEngineerActive(ctx context.Context, id uuid.UUID, active bool) error
	ListEngineers(ctx context.Context, activeOnly bool) ([]models.ITEngineer, error)
}

type PostgresWitnessRepository struct {
	DB *sqlx.DB
}

func NewWitnessRepository(db *sqlx.DB) WitnessRepository {
	return &PostgresWitnessRepository{DB: db}
}

func (r *PostgresWitnessRepository) InsertEngineer(ctx context.Context, eng models.ITEngineer) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, `
		INSERT INTO it_engineers (name, email, active)
		VALUES ($1, $2, TRUE)
		RETURNING id
	`, eng.Name, eng.Email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert engineer: %w", err)
	}
	return id, nil
}

func (r *PostgresWitnessRepository) GetEngineerByID(ctx context.Context, id uuid.UUID) (models.ITEngineer, error) {
	var eng models.ITEngineer
	err := r.DB.GetContext(ctx, &eng, `
		SELECT * FROM it_engineers WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return eng, models.NewNotFoundError("engineer", id.String())
		}
		return eng, fmt.Errorf("failed to fetch engineer: %w", err)
	}
	return eng, nil
}

// SetEngineerActive toggles eligibility for new transactions. Historical
// witness references on requests and return records stay intact.
func (r *PostgresWitnessRepository) SetEngineerActive(ctx context.Context, id uuid.UUID, active bool) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE it_engineers SET active = $2, updated_at = now() WHERE id = $1
	`, id, active)
	if err != nil {
		return fmt.Errorf("failed to set engineer active flag: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("engineer", id.String())
	}
	return nil
}

func (r *PostgresWitnessRepository) ListEngineers(ctx context.Context, activeOnly bool) ([]models.ITEngineer, error) {
	engineers := make([]models.ITEngineer, 0)
	err := r.DB.SelectContext(ctx, &engineers, `
		SELECT * FROM it_engineers
		WHERE NOT $1 OR active
		ORDER BY name
	`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list engineers: %w", err)
	}
	return engineers, nil
}

type WitnessService interface {
	CreateEngineer(ctx context.Context, req CreateEngineerReq) (uuid.UUID, error)
	DeactivateEngineer(ctx context.Context, id uuid.UUID) error
	ReactivateEngineer(ctx context.Context, id uuid.UUID) error
	ListEngineers(ctx context.Context, activeOnly bool) ([]models.ITEngineer, error)
}

type witnessService struct {
	repo WitnessRepository
}

func NewWitnessService(repo WitnessRepository) WitnessService {
	return &witnessService{repo: repo}
}

func (s *witnessService) CreateEngineer(ctx context.Context, req CreateEngineerReq) (uuid.UUID, error) {
	eng := models.ITEngineer{Name: req.Name, Active: true}
	if req.Email != "" {
		eng.Email = &req.Email
	}
	return s.repo.InsertEngineer(ctx, eng)
}

func (s *witnessService) DeactivateEngineer(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetEngineerActive(ctx, id, false)
}

func (s *witnessService) ReactivateEngineer(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetEngineerActive(ctx, id, true)
}

func (s *witnessService) ListEngineers(ctx context.Context, activeOnly bool) ([]models.ITEngineer, error) {
	return s.repo.ListEngineers(ctx, activeOnly)
}
