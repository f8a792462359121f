package registryservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"itam/models"
)

type RegistryRepository interface {
	InsertAsset(ctx context.Context, asset models.Asset) (uuid.UUID, error)
	UpdateAsset(ctx context.Context, req UpdateAssetReq) error
	DeleteAsset(ctx context.Context, assetID uuid.UUID) (bool, error)
	GetAssetByID(ctx context.Context, assetID uuid.UUID) (models.Asset, error)
}

type PostgresRegistryRepository struct {
	DB *sqlx.DB
}

func NewRegistryRepository(db *sqlx.DB) RegistryRepository {
	return &PostgresRegistryRepository{DB: db}
}

func (r *PostgresRegistryRepository) InsertAsset(ctx context.Context, asset models.Asset) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, `
		INSERT INTO assets (
			asset_tag, brand, model, specs, serial_number, type, status,
			purchase_date, expiry_date, vendor, po_number, mac_address, cloud_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`, asset.AssetTag, asset.Brand, asset.Model, asset.Specs, asset.SerialNumber,
		asset.Type, asset.Status, asset.PurchaseDate, asset.ExpiryDate,
		asset.Vendor, asset.PONumber, asset.MACAddress, asset.CloudID)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, models.NewValidationError("unique", "asset tag or serial number already registered")
		}
		return uuid.Nil, fmt.Errorf("failed to insert asset: %w", err)
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresRegistryRepository) UpdateAsset(ctx context.Context, req UpdateAssetReq) error {
	query := `UPDATE assets SET `
	args := []interface{}{}
	argPos := 1

	set := func(column, value string) {
		if value != "" {
			query += fmt.Sprintf("%s = $%d, ", column, argPos)
			args = append(args, value)
			argPos++
		}
	}

	set("brand", req.Brand)
	set("model", req.Model)
	set("specs", req.Specs)
	set("serial_number", req.SerialNumber)
	set("type", req.Type)
	set("expiry_date", req.ExpiryDate)
	set("vendor", req.Vendor)
	set("po_number", req.PONumber)
	set("mac_address", req.MACAddress)
	set("cloud_id", req.CloudID)

	query += fmt.Sprintf("updated_at = now() WHERE id = $%d", argPos)
	args = append(args, req.AssetID)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("unique", "serial number already registered")
		}
		return fmt.Errorf("failed to update asset: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("asset", req.AssetID.String())
	}
	return nil
}

// DeleteAsset hard-deletes an uncustodied unit. The status predicate guards
// against a racing reservation; the caller distinguishes "gone" from
// "custodied" by re-reading.
func (r *PostgresRegistryRepository) DeleteAsset(ctx context.Context, assetID uuid.UUID) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM assets
		WHERE id = $1 AND status NOT IN ('Reserved', 'Allocated')
	`, assetID)
	if err != nil {
		return false, fmt.Errorf("failed to delete asset: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresRegistryRepository) GetAssetByID(ctx context.Context, assetID uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := r.DB.GetContext(ctx, &asset, `
		SELECT * FROM assets WHERE id = $1
	`, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return asset, models.NewNotFoundError("asset", assetID.String())
		}
		return asset, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}
