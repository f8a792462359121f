package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RequestStatus string

const (
	RequestPending            RequestStatus = "Pending"
	RequestPreparing          RequestStatus = "Preparing"
	RequestReadyForCollection RequestStatus = "Ready for Collection"
	RequestCompleted          RequestStatus = "Completed"
	RequestReturnInitiated    RequestStatus = "Return Initiated"
	RequestReturned           RequestStatus = "Returned"
	RequestReturnRejected     RequestStatus = "Return Rejected"
)

func IsValidRequestStatus(s string) bool {
	switch RequestStatus(s) {
	case RequestPending, RequestPreparing, RequestReadyForCollection,
		RequestCompleted, RequestReturnInitiated, RequestReturned,
		RequestReturnRejected:
		return true
	}
	return false
}

// Active reports whether the request still occupies the allocation pipeline.
func (s RequestStatus) Active() bool {
	return s != RequestCompleted && s != RequestReturned && s != RequestReturnRejected
}

// AssetRequest is a demand for hardware raised for one employee.
// AssignedAssetID is set if and only if the request reached
// Ready for Collection (and stays set through Completed).
type AssetRequest struct {
	ID               uuid.UUID      `json:"id" db:"id"`
	EmployeeID       uuid.UUID      `json:"employee_id" db:"employee_id"`
	RequestedModel   string         `json:"requested_model" db:"requested_model"`
	RequiredSoftware pq.StringArray `json:"required_software" db:"required_software"`
	RequiredHardware pq.StringArray `json:"required_hardware" db:"required_hardware"`
	CollectionDate   time.Time      `json:"collection_date" db:"collection_date"`
	CollectionTime   string         `json:"collection_time" db:"collection_time"`
	Status           RequestStatus  `json:"status" db:"status"`
	AssignedAssetID  *uuid.UUID     `json:"assigned_asset_id,omitempty" db:"assigned_asset_id"`

	// Sign-off artifacts, written once by the acceptance flow.
	SignatureImage    *string    `json:"signature_image,omitempty" db:"signature_image"`
	HandoverPhoto     *string    `json:"handover_photo,omitempty" db:"handover_photo"`
	UATRemarks        *string    `json:"uat_remarks,omitempty" db:"uat_remarks"`
	SignedDate        *time.Time `json:"signed_date,omitempty" db:"signed_date"`
	WitnessEngineerID *uuid.UUID `json:"witness_engineer_id,omitempty" db:"witness_engineer_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Receipt carries the data for the downstream handover document. The engine
// produces the value; rendering is a collaborator concern.
type Receipt struct {
	RequestID     uuid.UUID `json:"request_id"`
	AssetTag      string    `json:"asset_tag"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	SerialNumber  string    `json:"serial_number"`
	Hostname      string    `json:"hostname"`
	CustodianCode string    `json:"custodian_code"`
	CustodianName string    `json:"custodian_name"`
	WitnessName   string    `json:"witness_name,omitempty"`
	SignedDate    time.Time `json:"signed_date"`
}
