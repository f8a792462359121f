package allocationservice

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"itam/models"
	"itam/providers"
	"itam/utils"
)

type AllocationHandler struct {
	Service        AllocationService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewAllocationHandler(service AllocationService, auth providers.AuthMiddlewareService) *AllocationHandler {
	return &AllocationHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *AllocationHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	request, err := h.Service.SubmitRequest(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, request)
}

func (h *AllocationHandler) FulfillRequest(w http.ResponseWriter, r *http.Request) {
	var req FulfillRequestReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	ok, err := h.Service.FulfillRequest(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	if !ok {
		utils.RespondJSON(w, http.StatusConflict, map[string]interface{}{
			"fulfilled": false,
			"message":   "request or asset unavailable, re-fetch stock and retry",
		})
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"fulfilled": true})
}

func (h *AllocationHandler) SignAcceptance(w http.ResponseWriter, r *http.Request) {
	callerID, role, err := h.AuthMiddleware.GetCallerFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req SignAcceptanceReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	// Employees may only sign for their own request; IT and PowerIT sign on
	// behalf of the collecting employee. No other role signs.
	switch role {
	case models.EmployeeRole:
		request, err := h.Service.GetRequest(r.Context(), req.RequestID)
		if err != nil {
			utils.RespondDomainError(w, err)
			return
		}
		if request.EmployeeID.String() != callerID {
			utils.RespondError(w, http.StatusForbidden, nil, "employees may only sign their own request")
			return
		}
	case models.ITRole, models.PowerITRole:
	default:
		utils.RespondError(w, http.StatusForbidden, nil, "role may not sign acceptances")
		return
	}

	receipt, err := h.Service.SignAcceptance(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, receipt)
}

func (h *AllocationHandler) ProcessReturn(w http.ResponseWriter, r *http.Request) {
	var req ProcessReturnReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	record, err := h.Service.ProcessReturn(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, record)
}

func (h *AllocationHandler) SetAssetCondition(w http.ResponseWriter, r *http.Request) {
	var req SetAssetConditionReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	if err := h.Service.SetAssetCondition(r.Context(), req); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "asset condition updated"})
}

func (h *AllocationHandler) OverrideRequestStatus(w http.ResponseWriter, r *http.Request) {
	var req OverrideRequestStatusReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	if err := h.Service.OverrideRequestStatus(r.Context(), req); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "request status overridden"})
}

func (h *AllocationHandler) ListAssetsByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit, offset := utils.GetPageLimitAndOffset(r)

	assets, err := h.Service.ListAssetsByStatus(r.Context(), status, limit, offset)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

func (h *AllocationHandler) ListRequestsByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeKey := r.URL.Query().Get("employee")

	// Employees see their own requests regardless of the query parameter.
	if callerID, role, err := h.AuthMiddleware.GetCallerFromContext(r); err == nil && role == models.EmployeeRole {
		employeeKey = callerID
	}
	if employeeKey == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "employee query parameter is required")
		return
	}

	requests, err := h.Service.ListRequestsByEmployee(r.Context(), employeeKey)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

func (h *AllocationHandler) FindAvailableStock(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Service.FindAvailableStock(r.Context(), r.URL.Query().Get("model"))
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"stock": assets})
}

func (h *AllocationHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.GetLedger(r.Context())
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"ledger": rows})
}

func (h *AllocationHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"laptop_models":        models.LaptopModels,
		"collection_slots":     models.CollectionSlots,
		"software_catalog":     models.SoftwareCatalog,
		"hardware_accessories": models.HardwareAccessories,
	})
}
