package registryservice

import (
	"github.com/google/uuid"
)

type CreateAssetReq struct {
	AssetTag     string `json:"asset_tag" validate:"required"`
	Brand        string `json:"brand" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Specs        string `json:"specs"`
	SerialNumber string `json:"serial_number" validate:"required"`
	Type         string `json:"type" validate:"required"`
	PurchaseDate string `json:"purchase_date" validate:"required"` // YYYY-MM-DD
	ExpiryDate   string `json:"expiry_date"`                       // YYYY-MM-DD
	Vendor       string `json:"vendor"`
	PONumber     string `json:"po_number"`
	MACAddress   string `json:"mac_address"`
	CloudID      string `json:"cloud_id"`
}

type UpdateAssetReq struct {
	AssetID      uuid.UUID `json:"asset_id" validate:"required"`
	Brand        string    `json:"brand,omitempty"`
	Model        string    `json:"model,omitempty"`
	Specs        string    `json:"specs,omitempty"`
	SerialNumber string    `json:"serial_number,omitempty"`
	Type         string    `json:"type,omitempty"`
	ExpiryDate   string    `json:"expiry_date,omitempty"` // YYYY-MM-DD
	Vendor       string    `json:"vendor,omitempty"`
	PONumber     string    `json:"po_number,omitempty"`
	MACAddress   string    `json:"mac_address,omitempty"`
	CloudID      string    `json:"cloud_id,omitempty"`
}
