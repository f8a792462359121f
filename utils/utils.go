package utils

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"itam/models"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := jsoniter.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to serialize JSON response", http.StatusInternalServerError)
	}
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		Logger.Error(message, zap.Error(err))
	}
	RespondJSON(w, statusCode, map[string]string{"error": message})
}

// RespondDomainError maps the engine's error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is treated as an internal error.
func RespondDomainError(w http.ResponseWriter, err error) {
	switch {
	case models.IsValidationError(err):
		RespondError(w, http.StatusBadRequest, err, err.Error())
	case models.IsNotFound(err):
		RespondError(w, http.StatusNotFound, err, err.Error())
	case models.IsPreconditionError(err):
		RespondError(w, http.StatusConflict, err, err.Error())
	case models.IsStoreUnavailable(err):
		RespondError(w, http.StatusServiceUnavailable, err, "store unavailable, retry later")
	default:
		RespondError(w, http.StatusInternalServerError, err, "internal server error")
	}
}

func GetPageLimitAndOffset(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// zap logger
var Logger *zap.Logger

func InitLogger() {
	var err error
	Logger, err = zap.NewDevelopment()
	if err != nil {
		panic("Failed to initialize zap logger: " + err.Error())
	}
	zap.ReplaceGlobals(Logger)
}

func SyncLogger() {
	if Logger != nil {
		Logger.Sync()
	}
}
