package models

import (
	"time"

	"github.com/google/uuid"
)

type AssetStatus string

const (
	AssetInStock      AssetStatus = "In Stock"
	AssetReserved     AssetStatus = "Reserved"
	AssetAllocated    AssetStatus = "Allocated"
	AssetFaulty       AssetStatus = "Faulty"
	AssetUnderRepair  AssetStatus = "Under Repair"
	AssetVendorReturn AssetStatus = "Vendor Return"
	AssetRetired      AssetStatus = "Retired"
)

// Custodied reports whether the status implies a custodian. The invariant
// is: AssignedTo is set if and only if Custodied() is true.
func (s AssetStatus) Custodied() bool {
	return s == AssetReserved || s == AssetAllocated
}

func IsValidAssetStatus(s string) bool {
	switch AssetStatus(s) {
	case AssetInStock, AssetReserved, AssetAllocated, AssetFaulty,
		AssetUnderRepair, AssetVendorReturn, AssetRetired:
		return true
	}
	return false
}

// ITStorageCustodian is the sentinel AssignedTo value for units parked in
// the IT store room rather than with an employee.
const ITStorageCustodian = "IT STORAGE"

type AssetType string

const (
	AssetTypeLaptop     AssetType = "Laptop"
	AssetTypeTablet     AssetType = "Tablet"
	AssetTypeDesktop    AssetType = "Desktop"
	AssetTypePeripheral AssetType = "Peripheral"
	AssetTypeMobile     AssetType = "Mobile"
)

func IsValidAssetType(t string) bool {
	switch AssetType(t) {
	case AssetTypeLaptop, AssetTypeTablet, AssetTypeDesktop, AssetTypePeripheral, AssetTypeMobile:
		return true
	}
	return false
}

// Asset is one physical unit. AssetTag and SerialNumber are unique.
// AssignedTo holds the custodian's employee code (or ITStorageCustodian)
// while the unit is Reserved or Allocated, and is NULL otherwise.
type Asset struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	AssetTag     string      `json:"asset_tag" db:"asset_tag"`
	Brand        string      `json:"brand" db:"brand"`
	Model        string      `json:"model" db:"model"`
	Specs        string      `json:"specs" db:"specs"`
	SerialNumber string      `json:"serial_number" db:"serial_number"`
	Type         AssetType   `json:"type" db:"type"`
	Status       AssetStatus `json:"status" db:"status"`
	PurchaseDate time.Time   `json:"purchase_date" db:"purchase_date"`
	ExpiryDate   *time.Time  `json:"expiry_date,omitempty" db:"expiry_date"`
	Vendor       string      `json:"vendor" db:"vendor"`
	PONumber     string      `json:"po_number" db:"po_number"`
	MACAddress   string      `json:"mac_address" db:"mac_address"`
	Hostname     *string     `json:"hostname,omitempty" db:"hostname"`
	CloudID      *string     `json:"cloud_id,omitempty" db:"cloud_id"`
	AssignedTo   *string     `json:"assigned_to,omitempty" db:"assigned_to"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}
