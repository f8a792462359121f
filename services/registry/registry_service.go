package registryservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"itam/models"
	"itam/utils"
)

type RegistryService interface {
	CreateAsset(ctx context.Context, req CreateAssetReq) (uuid.UUID, error)
	UpdateAsset(ctx context.Context, req UpdateAssetReq) error
	DeleteAsset(ctx context.Context, assetID uuid.UUID) error
	GetAsset(ctx context.Context, assetID uuid.UUID) (models.Asset, error)
}

type registryService struct {
	repo RegistryRepository
}

func NewRegistryService(repo RegistryRepository) RegistryService {
	return &registryService{repo: repo}
}

// CreateAsset registers a new unit. Every unit enters the fleet In Stock;
// custody states are only reachable through fulfillment and acceptance.
func (s *registryService) CreateAsset(ctx context.Context, req CreateAssetReq) (uuid.UUID, error) {
	if !models.IsValidAssetType(req.Type) {
		return uuid.Nil, models.NewValidationError("type", "%q is not a valid asset type", req.Type)
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return uuid.Nil, models.NewValidationError("date-format", "purchase date must be YYYY-MM-DD")
	}

	asset := models.Asset{
		AssetTag:     req.AssetTag,
		Brand:        req.Brand,
		Model:        req.Model,
		Specs:        req.Specs,
		SerialNumber: req.SerialNumber,
		Type:         models.AssetType(req.Type),
		Status:       models.AssetInStock,
		PurchaseDate: purchaseDate,
		Vendor:       req.Vendor,
		PONumber:     req.PONumber,
		MACAddress:   req.MACAddress,
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return uuid.Nil, models.NewValidationError("date-format", "expiry date must be YYYY-MM-DD")
		}
		asset.ExpiryDate = &expiryDate
	}
	if req.CloudID != "" {
		asset.CloudID = &req.CloudID
	}

	id, err := s.repo.InsertAsset(ctx, asset)
	if err != nil {
		return uuid.Nil, err
	}

	utils.Logger.Info("asset registered",
		zap.String("asset_id", id.String()),
		zap.String("asset_tag", req.AssetTag),
		zap.String("serial_number", req.SerialNumber))
	return id, nil
}

func (s *registryService) UpdateAsset(ctx context.Context, req UpdateAssetReq) error {
	if req.Type != "" && !models.IsValidAssetType(req.Type) {
		return models.NewValidationError("type", "%q is not a valid asset type", req.Type)
	}
	if req.ExpiryDate != "" {
		if _, err := time.Parse("2006-01-02", req.ExpiryDate); err != nil {
			return models.NewValidationError("date-format", "expiry date must be YYYY-MM-DD")
		}
	}
	return s.repo.UpdateAsset(ctx, req)
}

// DeleteAsset removes an uncustodied unit from the fleet. A Reserved or
// Allocated unit must go through return (or the condition side channel)
// first; its history in requests and return records is the reason.
func (s *registryService) DeleteAsset(ctx context.Context, assetID uuid.UUID) error {
	asset, err := s.repo.GetAssetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if asset.Status.Custodied() {
		return models.NewPreconditionError("asset %s is %s and cannot be deleted while custodied",
			asset.AssetTag, asset.Status)
	}

	deleted, err := s.repo.DeleteAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewPreconditionError("asset %s was reserved concurrently, retry after it is returned",
			asset.AssetTag)
	}

	utils.Logger.Info("asset deleted",
		zap.String("asset_id", assetID.String()),
		zap.String("asset_tag", asset.AssetTag))
	return nil
}

func (s *registryService) GetAsset(ctx context.Context, assetID uuid.UUID) (models.Asset, error) {
	return s.repo.GetAssetByID(ctx, assetID)
}
