package directoryservice

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"itam/providers"
	"itam/utils"
)

type DirectoryHandler struct {
	Service        DirectoryService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewDirectoryHandler(service DirectoryService, auth providers.AuthMiddlewareService) *DirectoryHandler {
	return &DirectoryHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *DirectoryHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "a valid email is required")
		return
	}

	res, err := h.Service.Login(r.Context(), req)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "user not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *DirectoryHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required fields")
		return
	}

	id, err := h.Service.CreateEmployee(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *DirectoryHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req UpdateEmployeeReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "employee key is required")
		return
	}

	if err := h.Service.UpdateEmployee(r.Context(), req); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "employee updated successfully"})
}

func (h *DirectoryHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("employee")
	if key == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "employee query parameter is required")
		return
	}

	if err := h.Service.DeleteEmployee(r.Context(), key); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "employee deleted successfully"})
}

func (h *DirectoryHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("employee")
	if key == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "employee query parameter is required")
		return
	}

	employee, err := h.Service.ResolveEmployee(r.Context(), key)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, employee)
}

func (h *DirectoryHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := EmployeeFilter{
		SearchText:   r.URL.Query().Get("search"),
		IsSearchText: r.URL.Query().Get("search") != "",
		Status:       strings.Split(r.URL.Query().Get("status"), ","),
		Department:   strings.Split(r.URL.Query().Get("department"), ","),
	}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	employees, err := h.Service.ListEmployees(r.Context(), filter)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"employees": employees})
}
