package allocationservice

import (
	"time"

	"github.com/google/uuid"

	"itam/models"
)

type SubmitRequestReq struct {
	EmployeeKey      string   `json:"employee_key" validate:"required"`
	RequestedModel   string   `json:"requested_model" validate:"required"`
	RequiredSoftware []string `json:"required_software"`
	RequiredHardware []string `json:"required_hardware"`
	CollectionDate   string   `json:"collection_date" validate:"required"` // YYYY-MM-DD
	CollectionTime   string   `json:"collection_time" validate:"required"`
}

type FulfillRequestReq struct {
	RequestID uuid.UUID `json:"request_id" validate:"required"`
	AssetID   uuid.UUID `json:"asset_id" validate:"required"`
	Hostname  string    `json:"hostname" validate:"required"`
}

type SignAcceptanceReq struct {
	RequestID         uuid.UUID  `json:"request_id" validate:"required"`
	SignatureImage    string     `json:"signature_image" validate:"required"`
	HandoverPhoto     string     `json:"handover_photo"`
	Remarks           string     `json:"remarks"`
	WitnessEngineerID *uuid.UUID `json:"witness_engineer_id,omitempty"`
}

type ProcessReturnReq struct {
	AssetID           uuid.UUID `json:"asset_id" validate:"required"`
	EmployeeKey       string    `json:"employee_key" validate:"required"`
	Condition         string    `json:"condition" validate:"required"`
	Remarks           string    `json:"remarks"`
	Photo             string    `json:"photo"`
	// Whether a witness is mandatory is the service's WitnessPolicy call,
	// not a transport-level rule.
	WitnessEngineerID uuid.UUID `json:"witness_engineer_id"`
	WitnessSignature  string    `json:"witness_signature"`
}

type SetAssetConditionReq struct {
	AssetID   uuid.UUID `json:"asset_id" validate:"required"`
	NewStatus string    `json:"new_status" validate:"required"`
}

type OverrideRequestStatusReq struct {
	RequestID uuid.UUID `json:"request_id" validate:"required"`
	NewStatus string    `json:"new_status" validate:"required"`
}

// WitnessPolicy states, per operation, whether a witnessing engineer is
// mandatory. The supplied engineer must be active either way.
type WitnessPolicy struct {
	AcceptanceRequiresWitness bool
	ReturnRequiresWitness     bool
}

func DefaultWitnessPolicy() WitnessPolicy {
	return WitnessPolicy{
		AcceptanceRequiresWitness: false,
		ReturnRequiresWitness:     true,
	}
}

// LedgerRow joins an asset with its resolved custodian for the restricted
// inventory ledger view. A dangling custodian reference renders as
// "Unknown" rather than failing the read.
type LedgerRow struct {
	AssetTag      string             `json:"asset_tag" db:"asset_tag"`
	Brand         string             `json:"brand" db:"brand"`
	Model         string             `json:"model" db:"model"`
	Status        models.AssetStatus `json:"status" db:"status"`
	CustodianName string             `json:"custodian_name" db:"custodian_name"`
	Department    string             `json:"department" db:"department"`
	UpdatedAt     time.Time          `json:"updated_at" db:"updated_at"`
}
