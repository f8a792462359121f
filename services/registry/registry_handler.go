package registryservice

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"itam/providers"
	"itam/utils"
)

type RegistryHandler struct {
	Service        RegistryService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewRegistryHandler(service RegistryService, auth providers.AuthMiddlewareService) *RegistryHandler {
	return &RegistryHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *RegistryHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req CreateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	id, err := h.Service.CreateAsset(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"asset_id": id.String()})
}

func (h *RegistryHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req UpdateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	if err := h.Service.UpdateAsset(r.Context(), req); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "asset updated"})
}

func (h *RegistryHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(r.URL.Query().Get("asset_id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "asset_id query parameter must be a UUID")
		return
	}

	if err := h.Service.DeleteAsset(r.Context(), assetID); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "asset deleted"})
}

func (h *RegistryHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(r.URL.Query().Get("asset_id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "asset_id query parameter must be a UUID")
		return
	}

	asset, err := h.Service.GetAsset(r.Context(), assetID)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}
