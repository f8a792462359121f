package allocationservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"itam/models"
	"itam/providers"
	"itam/utils"
)

// storeTimeout bounds every store round trip so an unreachable database
// surfaces as StoreUnavailableError instead of a hang.
const storeTimeout = 5 * time.Second

const maxAdvanceBooking = 3 // months

// EmployeeResolver resolves either an internal id or a human employee code
// to the Employee record. Every engine operation goes through it instead of
// duplicating the dual-key lookup.
type EmployeeResolver interface {
	ResolveEmployee(ctx context.Context, key string) (models.Employee, error)
}

type AllocationService interface {
	SubmitRequest(ctx context.Context, req SubmitRequestReq) (models.AssetRequest, error)
	FulfillRequest(ctx context.Context, req FulfillRequestReq) (bool, error)
	SignAcceptance(ctx context.Context, req SignAcceptanceReq) (models.Receipt, error)
	ProcessReturn(ctx context.Context, req ProcessReturnReq) (models.ReturnRecord, error)
	SetAssetCondition(ctx context.Context, req SetAssetConditionReq) error
	OverrideRequestStatus(ctx context.Context, req OverrideRequestStatusReq) error

	ListAssetsByStatus(ctx context.Context, status string, limit, offset int) ([]models.Asset, error)
	ListRequestsByEmployee(ctx context.Context, employeeKey string) ([]models.AssetRequest, error)
	FindAvailableStock(ctx context.Context, modelHint string) ([]models.Asset, error)
	GetLedger(ctx context.Context) ([]LedgerRow, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (models.AssetRequest, error)
}

type allocationService struct {
	repo     AllocationRepository
	resolver EmployeeResolver
	db       *sqlx.DB
	clock    providers.Clock
	calendar providers.HolidayCalendar
	policy   WitnessPolicy
}

func NewAllocationService(repo AllocationRepository, resolver EmployeeResolver, db *sqlx.DB,
	clock providers.Clock, calendar providers.HolidayCalendar, policy WitnessPolicy) AllocationService {
	return &allocationService{
		repo:     repo,
		resolver: resolver,
		db:       db,
		clock:    clock,
		calendar: calendar,
		policy:   policy,
	}
}

func (s *allocationService) SubmitRequest(ctx context.Context, req SubmitRequestReq) (models.AssetRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var out models.AssetRequest

	employee, err := s.resolver.ResolveEmployee(ctx, req.EmployeeKey)
	if err != nil {
		if models.IsNotFound(err) {
			return out, models.NewValidationError("employee", "no employee for key %q", req.EmployeeKey)
		}
		return out, err
	}

	collectionDate, err := time.Parse("2006-01-02", req.CollectionDate)
	if err != nil {
		return out, models.NewValidationError("date-format", "collection date must be YYYY-MM-DD")
	}

	if err := s.validateCollectionDate(ctx, collectionDate); err != nil {
		return out, err
	}

	if !isValidCollectionSlot(req.CollectionTime) {
		return out, models.NewValidationError("collection-slot", "%q is not an offered collection slot", req.CollectionTime)
	}

	out = models.AssetRequest{
		EmployeeID:       employee.ID,
		RequestedModel:   req.RequestedModel,
		RequiredSoftware: req.RequiredSoftware,
		RequiredHardware: req.RequiredHardware,
		CollectionDate:   collectionDate,
		CollectionTime:   req.CollectionTime,
		Status:           models.RequestPending,
	}

	id, err := s.repo.InsertRequest(ctx, out)
	if err != nil {
		return models.AssetRequest{}, err
	}
	out.ID = id

	utils.Logger.Info("request submitted",
		zap.String("request_id", id.String()),
		zap.String("employee_code", employee.EmployeeCode),
		zap.String("model", req.RequestedModel))
	return out, nil
}

// validateCollectionDate applies the booking policy: strictly after today
// (at least one calendar day), at most three months out, never a weekend,
// never a public holiday.
func (s *allocationService) validateCollectionDate(ctx context.Context, date time.Time) error {
	today := truncateToDay(s.clock.Now())
	day := truncateToDay(date)

	if !day.After(today) {
		return models.NewValidationError("at least 1 day", "collection must be booked at least 1 day ahead")
	}
	if day.After(today.AddDate(0, maxAdvanceBooking, 0)) {
		return models.NewValidationError("3 months max", "collection cannot be more than 3 months in advance")
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return models.NewValidationError("weekend", "collections cannot be scheduled on weekends")
	}

	isHoliday, err := s.calendar.IsHoliday(ctx, day)
	if err != nil {
		return models.NewStoreUnavailableError(fmt.Errorf("holiday lookup: %w", err))
	}
	if isHoliday {
		return models.NewValidationError("holiday", "selected date is a public holiday")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isValidCollectionSlot(slot string) bool {
	for _, s := range models.CollectionSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// FulfillRequest matches an In Stock unit to a pending request. The asset's
// status is re-checked inside the transaction, so of two racing operators
// exactly one wins; the loser gets false with nothing mutated. A request
// that already holds a reservation has it released before re-targeting.
func (s *allocationService) FulfillRequest(ctx context.Context, req FulfillRequestReq) (ok bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, models.NewStoreUnavailableError(err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil || !ok {
			tx.Rollback()
		} else {
			if commitErr := tx.Commit(); commitErr != nil {
				ok = false
				err = models.NewStoreUnavailableError(commitErr)
			}
		}
	}()

	request, err := s.repo.GetRequestForUpdate(ctx, tx, req.RequestID)
	if err != nil {
		if models.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	employee, err := s.resolver.ResolveEmployee(ctx, request.EmployeeID.String())
	if err != nil {
		if models.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	// Re-targeting: free the previously reserved unit first so it does not
	// stay orphaned in Reserved.
	if request.AssignedAssetID != nil && *request.AssignedAssetID != req.AssetID {
		released, relErr := s.repo.ReleaseReservation(ctx, tx, *request.AssignedAssetID)
		if relErr != nil {
			return false, relErr
		}
		if released {
			utils.Logger.Info("released prior reservation",
				zap.String("request_id", req.RequestID.String()),
				zap.String("asset_id", request.AssignedAssetID.String()))
		}
	}

	// Asset write precedes the request write (recoverable ordering when the
	// store offers no transactions).
	reserved, err := s.repo.ReserveAsset(ctx, tx, req.AssetID, employee.EmployeeCode, req.Hostname)
	if err != nil {
		return false, err
	}
	if !reserved {
		utils.Logger.Warn("fulfillment rejected, asset not in stock",
			zap.String("request_id", req.RequestID.String()),
			zap.String("asset_id", req.AssetID.String()))
		return false, nil
	}

	if err = s.repo.MarkRequestFulfilled(ctx, tx, req.RequestID, req.AssetID); err != nil {
		return false, err
	}

	utils.Logger.Info("request fulfilled",
		zap.String("request_id", req.RequestID.String()),
		zap.String("asset_id", req.AssetID.String()),
		zap.String("custodian", employee.EmployeeCode),
		zap.String("hostname", req.Hostname))
	return true, nil
}

// SignAcceptance finalizes the handover: the employee's digital sign-off
// moves the unit from Reserved to Allocated and closes the request.
func (s *allocationService) SignAcceptance(ctx context.Context, req SignAcceptanceReq) (receipt models.Receipt, err error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var witnessName string
	if req.WitnessEngineerID != nil {
		engineer, engErr := s.repo.GetEngineerByID(ctx, *req.WitnessEngineerID)
		if engErr != nil {
			return receipt, engErr
		}
		if !engineer.Active {
			return receipt, models.NewPreconditionError("engineer %s is not active", engineer.Name)
		}
		witnessName = engineer.Name
	} else if s.policy.AcceptanceRequiresWitness {
		return receipt, models.NewValidationError("witness", "a witnessing engineer is required for acceptance")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return receipt, models.NewStoreUnavailableError(err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			if commitErr := tx.Commit(); commitErr != nil {
				err = models.NewStoreUnavailableError(commitErr)
			}
		}
	}()

	request, err := s.repo.GetRequestForUpdate(ctx, tx, req.RequestID)
	if err != nil {
		return receipt, err
	}
	if request.Status != models.RequestReadyForCollection {
		return receipt, models.NewPreconditionError("request is %s, expected %s",
			request.Status, models.RequestReadyForCollection)
	}
	if request.AssignedAssetID == nil {
		return receipt, models.NewPreconditionError("request has no assigned asset")
	}

	asset, err := s.repo.GetAssetByID(ctx, *request.AssignedAssetID)
	if err != nil {
		return receipt, err
	}

	allocated, err := s.repo.AllocateAsset(ctx, tx, asset.ID)
	if err != nil {
		return receipt, err
	}
	if !allocated {
		return receipt, models.NewPreconditionError("asset %s is %s, expected %s",
			asset.AssetTag, asset.Status, models.AssetReserved)
	}

	if err = s.repo.CompleteRequest(ctx, tx, req); err != nil {
		return receipt, err
	}

	employee, err := s.resolver.ResolveEmployee(ctx, request.EmployeeID.String())
	if err != nil {
		return receipt, err
	}

	receipt = models.Receipt{
		RequestID:     request.ID,
		AssetTag:      asset.AssetTag,
		Brand:         asset.Brand,
		Model:         asset.Model,
		SerialNumber:  asset.SerialNumber,
		Hostname:      valueOrEmpty(asset.Hostname),
		CustodianCode: employee.EmployeeCode,
		CustodianName: employee.FullName(),
		WitnessName:   witnessName,
		SignedDate:    s.clock.Now(),
	}

	utils.Logger.Info("acceptance signed",
		zap.String("request_id", request.ID.String()),
		zap.String("asset_tag", asset.AssetTag),
		zap.String("custodian", employee.EmployeeCode))
	return receipt, nil
}

// ProcessReturn ends an asset's custody and writes the immutable return
// record. A unit returned in Good condition goes back to stock; anything
// else lands in Faulty. Custodian and hostname clear either way.
func (s *allocationService) ProcessReturn(ctx context.Context, req ProcessReturnReq) (record models.ReturnRecord, err error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if !models.IsValidReturnCondition(req.Condition) {
		return record, models.NewValidationError("condition", "%q is not a valid return condition", req.Condition)
	}
	condition := models.ReturnCondition(req.Condition)

	var engineer models.ITEngineer
	if req.WitnessEngineerID == uuid.Nil {
		if s.policy.ReturnRequiresWitness {
			return record, models.NewValidationError("witness", "a witnessing engineer is required for returns")
		}
	} else {
		engineer, err = s.repo.GetEngineerByID(ctx, req.WitnessEngineerID)
		if err != nil {
			return record, err
		}
		if !engineer.Active {
			return record, models.NewPreconditionError("engineer %s is not active", engineer.Name)
		}
	}

	employee, err := s.resolver.ResolveEmployee(ctx, req.EmployeeKey)
	if err != nil {
		return record, err
	}

	newStatus := models.AssetFaulty
	if condition == models.ConditionGood {
		newStatus = models.AssetInStock
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return record, models.NewStoreUnavailableError(err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			if commitErr := tx.Commit(); commitErr != nil {
				err = models.NewStoreUnavailableError(commitErr)
			}
		}
	}()

	// The custodian match doubles as the double-return guard: an already
	// returned unit has no custodian, so the update touches zero rows.
	custodianKeys := []string{employee.EmployeeCode, employee.ID.String()}
	returned, err := s.repo.ReturnAsset(ctx, tx, req.AssetID, custodianKeys, newStatus)
	if err != nil {
		return record, err
	}
	if !returned {
		return record, models.NewNotFoundError("custodied asset",
			fmt.Sprintf("%s (custodian %s)", req.AssetID, employee.EmployeeCode))
	}

	record = models.ReturnRecord{
		AssetID:     req.AssetID,
		EmployeeID:  employee.ID,
		Condition:   condition,
		Remarks:     req.Remarks,
		WitnessID:   engineer.ID,
		WitnessName: engineer.Name,
		ReturnDate:  s.clock.Now(),
	}
	if req.Photo != "" {
		record.Photo = &req.Photo
	}
	if req.WitnessSignature != "" {
		record.WitnessSignature = &req.WitnessSignature
	}

	id, err := s.repo.InsertReturnRecord(ctx, tx, record)
	if err != nil {
		return record, err
	}
	record.ID = id

	utils.Logger.Info("return processed",
		zap.String("asset_id", req.AssetID.String()),
		zap.String("employee_code", employee.EmployeeCode),
		zap.String("condition", string(condition)),
		zap.String("new_status", string(newStatus)))
	return record, nil
}

// SetAssetCondition is the IT side channel for the repair states. The engine
// operations own Reserved/Allocated, so those are rejected here.
func (s *allocationService) SetAssetCondition(ctx context.Context, req SetAssetConditionReq) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if !models.IsValidAssetStatus(req.NewStatus) {
		return models.NewValidationError("status", "%q is not a valid asset status", req.NewStatus)
	}
	newStatus := models.AssetStatus(req.NewStatus)
	if newStatus.Custodied() {
		return models.NewValidationError("status",
			"%s is only reachable through fulfillment and acceptance", newStatus)
	}

	updated, err := s.repo.SetAssetCondition(ctx, req.AssetID, newStatus)
	if err != nil {
		return err
	}
	if !updated {
		return models.NewNotFoundError("asset", req.AssetID.String())
	}

	utils.Logger.Info("asset condition set",
		zap.String("asset_id", req.AssetID.String()),
		zap.String("status", req.NewStatus))
	return nil
}

// OverrideRequestStatus is the administrative direct write for request side
// states the primary operations never produce.
func (s *allocationService) OverrideRequestStatus(ctx context.Context, req OverrideRequestStatusReq) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if !models.IsValidRequestStatus(req.NewStatus) {
		return models.NewValidationError("status", "%q is not a valid request status", req.NewStatus)
	}

	updated, err := s.repo.OverrideRequestStatus(ctx, req.RequestID, models.RequestStatus(req.NewStatus))
	if err != nil {
		return err
	}
	if !updated {
		return models.NewNotFoundError("request", req.RequestID.String())
	}
	return nil
}

func (s *allocationService) ListAssetsByStatus(ctx context.Context, status string, limit, offset int) ([]models.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if !models.IsValidAssetStatus(status) {
		return nil, models.NewValidationError("status", "%q is not a valid asset status", status)
	}
	return s.repo.ListAssetsByStatus(ctx, models.AssetStatus(status), limit, offset)
}

func (s *allocationService) ListRequestsByEmployee(ctx context.Context, employeeKey string) ([]models.AssetRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	employee, err := s.resolver.ResolveEmployee(ctx, employeeKey)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRequestsByEmployee(ctx, employee.ID)
}

func (s *allocationService) FindAvailableStock(ctx context.Context, modelHint string) ([]models.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.repo.FindAvailableStock(ctx, modelHint)
}

func (s *allocationService) GetLedger(ctx context.Context) ([]LedgerRow, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.repo.GetLedger(ctx)
}

func (s *allocationService) GetRequest(ctx context.Context, requestID uuid.UUID) (models.AssetRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.repo.GetRequestByID(ctx, requestID)
}
