package witnessservice

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"itam/providers"
	"itam/utils"
)

type WitnessHandler struct {
	Service        WitnessService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewWitnessHandler(service WitnessService, auth providers.AuthMiddlewareService) *WitnessHandler {
	return &WitnessHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *WitnessHandler) CreateEngineer(w http.ResponseWriter, r *http.Request) {
	var req CreateEngineerReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "engineer name is required")
		return
	}

	id, err := h.Service.CreateEngineer(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *WitnessHandler) DeactivateEngineer(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "engineer deactivated")
}

func (h *WitnessHandler) ReactivateEngineer(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "engineer reactivated")
}

func (h *WitnessHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	id, err := uuid.Parse(r.URL.Query().Get("engineer_id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid engineer id")
		return
	}

	if active {
		err = h.Service.ReactivateEngineer(r.Context(), id)
	} else {
		err = h.Service.DeactivateEngineer(r.Context(), id)
	}
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": message})
}

func (h *WitnessHandler) ListEngineers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	engineers, err := h.Service.ListEngineers(r.Context(), activeOnly)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"engineers": engineers})
}
