package allocationservice

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

type AllocationRepository interface {
	InsertRequest(ctx context.Context, req models.AssetRequest) (uuid.UUID, error)
	GetRequestByID(ctx context.Context, requestID uuid.UUID) (models.AssetRequest, error)
	GetRequestForUpdate(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID) (models.AssetRequest, error)
	GetAssetByID(ctx context.Context, assetID uuid.UUID) (models.Asset, error)
	GetEngineerByID(ctx context.Context, engineerID uuid.UUID) (models.ITEngineer, error)

	ReserveAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID, custodianCode, hostname string) (bool, error)
	ReleaseReservation(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (bool, error)
	MarkRequestFulfilled(ctx context.Context, tx *sqlx.Tx, requestID, assetID uuid.UUID) error
	AllocateAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (bool, error)
	CompleteRequest(ctx context.Context, tx *sqlx.Tx, req SignAcceptanceReq) error
	ReturnAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID, custodianCodes []string, newStatus models.AssetStatus) (bool, error)
	InsertReturnRecord(ctx context.Context, tx *sqlx.Tx, record models.ReturnRecord) (uuid.UUID, error)

	SetAssetCondition(ctx context.Context, assetID uuid.UUID, newStatus models.AssetStatus) (bool, error)
	OverrideRequestStatus(ctx context.Context, requestID uuid.UUID, newStatus models.RequestStatus) (bool, error)

	ListAssetsByStatus(ctx context.Context, status models.AssetStatus, limit, offset int) ([]models.Asset, error)
	ListRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.AssetRequest, error)
	FindAvailableStock(ctx context.Context, modelHint string) ([]models.Asset, error)
	GetLedger(ctx context.Context) ([]LedgerRow, error)
}

type PostgresAllocationRepository struct {
	DB *sqlx.DB
}

func NewAllocationRepository(db *sqlx.DB) AllocationRepository {
	return &PostgresAllocationRepository{DB: db}
}

// wrapStoreErr maps infrastructure failures (timeouts, dead connections) to
// StoreUnavailableError and leaves everything else untouched.
func wrapStoreErr(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, sql.ErrConnDone) {
		return models.NewStoreUnavailableError(fmt.Errorf("%s: %w", action, err))
	}
	if strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "bad connection") {
		return models.NewStoreUnavailableError(fmt.Errorf("%s: %w", action, err))
	}
	return fmt.Errorf("%s: %w", action, err)
}

func (r *PostgresAllocationRepository) InsertRequest(ctx context.Context, req models.AssetRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, `
		INSERT INTO asset_requests (
			employee_id, requested_model, required_software, required_hardware,
			collection_date, collection_time, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, req.EmployeeID, req.RequestedModel, pq.Array(req.RequiredSoftware),
		pq.Array(req.RequiredHardware), req.CollectionDate, req.CollectionTime, req.Status)
	if err != nil {
		return uuid.Nil, wrapStoreErr(err, "failed to insert request")
	}
	return id, nil
}

func (r *PostgresAllocationRepository) GetRequestByID(ctx context.Context, requestID uuid.UUID) (models.AssetRequest, error) {
	var req models.AssetRequest
	err := r.DB.GetContext(ctx, &req, `
		SELECT * FROM asset_requests WHERE id = $1
	`, requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return req, models.NewNotFoundError("request", requestID.String())
		}
		return req, wrapStoreErr(err, "failed to fetch request")
	}
	return req, nil
}

// GetRequestForUpdate row-locks the request so concurrent fulfillments of
// the same request serialize.
func (r *PostgresAllocationRepository) GetRequestForUpdate(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID) (models.AssetRequest, error) {
	var req models.AssetRequest
	err := tx.GetContext(ctx, &req, `
		SELECT * FROM asset_requests WHERE id = $1 FOR UPDATE
	`, requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return req, models.NewNotFoundError("request", requestID.String())
		}
		return req, wrapStoreErr(err, "failed to lock request")
	}
	return req, nil
}

func (r *PostgresAllocationRepository) GetAssetByID(ctx context.Context, assetID uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := r.DB.GetContext(ctx, &asset, `
		SELECT * FROM assets WHERE id = $1
	`, assetID)
	if err != nil {
		if err == sql.ErrNoRows {
			return asset, models.NewNotFoundError("asset", assetID.String())
		}
		return asset, wrapStoreErr(err, "failed to fetch asset")
	}
	return asset, nil
}

func (r *PostgresAllocationRepository) GetEngineerByID(ctx context.Context, engineerID uuid.UUID) (models.ITEngineer, error) {
	var eng models.ITEngineer
	err := r.DB.GetContext(ctx, &eng, `
		SELECT * FROM it_engineers WHERE id = $1
	`, engineerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return eng, models.NewNotFoundError("engineer", engineerID.String())
		}
		return eng, wrapStoreErr(err, "failed to fetch engineer")
	}
	return eng, nil
}

// ReserveAsset moves an In Stock unit to Reserved. The status predicate in
// the WHERE clause is the authoritative re-check: a stale caller loses the
// race and gets false back, with no mutation.
func (r *PostgresAllocationRepository) ReserveAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID, custodianCode, hostname string) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE assets
		SET status = 'Reserved', assigned_to = $2, hostname = $3, updated_at = now()
		WHERE id = $1 AND status = 'In Stock'
	`, assetID, custodianCode, hostname)
	if err != nil {
		return false, wrapStoreErr(err, "failed to reserve asset")
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresAllocationRepository) ReleaseReservation(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE assets
		SET status = 'In Stock', assigned_to = NULL, hostname = NULL, updated_at = now()
		WHERE id = $1 AND status = 'Reserved'
	`, assetID)
	if err != nil {
		return false, wrapStoreErr(err, "failed to release reservation")
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresAllocationRepository) MarkRequestFulfilled(ctx context.Context, tx *sqlx.Tx, requestID, assetID uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE asset_requests
		SET status = 'Ready for Collection', assigned_asset_id = $2, updated_at = now()
		WHERE id = $1
	`, requestID, assetID)
	if err != nil {
		return wrapStoreErr(err, "failed to mark request fulfilled")
	}
	return nil
}

func (r *PostgresAllocationRepository) AllocateAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE assets
		SET status = 'Allocated', updated_at = now()
		WHERE id = $1 AND status = 'Reserved'
	`, assetID)
	if err != nil {
		return false, wrapStoreErr(err, "failed to allocate asset")
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresAllocationRepository) CompleteRequest(ctx context.Context, tx *sqlx.Tx, req SignAcceptanceReq) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE asset_requests
		SET status = 'Completed',
		    signature_image = $2,
		    handover_photo = NULLIF($3, ''),
		    uat_remarks = NULLIF($4, ''),
		    witness_engineer_id = $5,
		    signed_date = now(),
		    updated_at = now()
		WHERE id = $1
	`, req.RequestID, req.SignatureImage, req.HandoverPhoto, req.Remarks, req.WitnessEngineerID)
	if err != nil {
		return wrapStoreErr(err, "failed to complete request")
	}
	return nil
}

// ReturnAsset ends custody. The predicate requires the unit to be custodied
// by one of the given keys right now, which doubles as the idempotence
// guard: a second return of the same unit matches zero rows.
func (r *PostgresAllocationRepository) ReturnAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID, custodianCodes []string, newStatus models.AssetStatus) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE assets
		SET status = $3, assigned_to = NULL, hostname = NULL, updated_at = now()
		WHERE id = $1
		  AND status IN ('Allocated', 'Reserved')
		  AND assigned_to = ANY($2)
	`, assetID, pq.Array(custodianCodes), newStatus)
	if err != nil {
		return false, wrapStoreErr(err, "failed to return asset")
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresAllocationRepository) InsertReturnRecord(ctx context.Context, tx *sqlx.Tx, record models.ReturnRecord) (uuid.UUID, error) {
	// A zero witness id means the policy allowed an unwitnessed return; the
	// FK column takes NULL rather than a dangling sentinel.
	var witnessID interface{}
	if record.WitnessID != uuid.Nil {
		witnessID = record.WitnessID
	}

	var id uuid.UUID
	err := tx.GetContext(ctx, &id, `
		INSERT INTO return_records (
			asset_id, employee_id, condition, remarks, photo,
			witness_id, witness_name, witness_signature
		)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''))
		RETURNING id
	`, record.AssetID, record.EmployeeID, record.Condition, record.Remarks,
		valueOrEmpty(record.Photo), witnessID, record.WitnessName,
		valueOrEmpty(record.WitnessSignature))
	if err != nil {
		return uuid.Nil, wrapStoreErr(err, "failed to insert return record")
	}
	return id, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SetAssetCondition is the administrative side channel. No source-state
// precondition; leaving a custodied state clears custodian and hostname.
func (r *PostgresAllocationRepository) SetAssetCondition(ctx context.Context, assetID uuid.UUID, newStatus models.AssetStatus) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE assets
		SET status = $2,
		    assigned_to = CASE WHEN $2 IN ('Reserved', 'Allocated') THEN assigned_to ELSE NULL END,
		    hostname = CASE WHEN $2 IN ('Reserved', 'Allocated') THEN hostname ELSE NULL END,
		    updated_at = now()
		WHERE id = $1
	`, assetID, newStatus)
	if err != nil {
		return false, wrapStoreErr(err, "failed to set asset condition")
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresAllocationRepository) OverrideRequestStatus(ctx context.Context, requestID uuid.UUID, newStatus models.RequestStatus) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE asset_requests
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, requestID, newStatus)
	if err != nil {
		return false, wrapStoreErr(err, "failed to override request status")
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresAllocationRepository) ListAssetsByStatus(ctx context.Context, status models.AssetStatus, limit, offset int) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT * FROM assets
		WHERE status = $1
		ORDER BY asset_tag
		LIMIT $2 OFFSET $3
	`, status, limit, offset)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list assets by status")
	}
	return assets, nil
}

func (r *PostgresAllocationRepository) ListRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.AssetRequest, error) {
	requests := make([]models.AssetRequest, 0)
	err := r.DB.SelectContext(ctx, &requests, `
		SELECT * FROM asset_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`, employeeID)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list requests by employee")
	}
	return requests, nil
}

// FindAvailableStock matches In Stock units by case-insensitive substring on
// model or brand; no hint returns the whole stock.
func (r *PostgresAllocationRepository) FindAvailableStock(ctx context.Context, modelHint string) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT * FROM assets
		WHERE status = 'In Stock'
		  AND ($1 = '' OR model ILIKE '%' || $1 || '%' OR brand ILIKE '%' || $1 || '%')
		ORDER BY asset_tag
	`, modelHint)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to find available stock")
	}
	return assets, nil
}

func (r *PostgresAllocationRepository) GetLedger(ctx context.Context) ([]LedgerRow, error) {
	rows := make([]LedgerRow, 0)
	err := r.DB.SelectContext(ctx, &rows, `
		SELECT
			a.asset_tag,
			a.brand,
			a.model,
			a.status,
			a.updated_at,
			COALESCE(e.first_name || ' ' || e.last_name,
			         CASE WHEN a.assigned_to IS NULL THEN '' ELSE 'Unknown' END) AS custodian_name,
			COALESCE(e.department, '') AS department
		FROM assets a
		LEFT JOIN employees e ON a.assigned_to = e.employee_code
		ORDER BY a.asset_tag
	`)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to fetch ledger")
	}
	return rows, nil
}
