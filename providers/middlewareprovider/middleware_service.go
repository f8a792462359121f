package middlewareprovider

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"itam/models"
	"itam/providers"
	"itam/utils"
)

type contextKey string

const (
	callerContextKey contextKey = "caller_key"
	roleContextKey   contextKey = "role_key"
)

type DefaultAuthMiddleware struct {
	db *sqlx.DB
}

func NewAuthMiddlewareService(db *sqlx.DB) providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{
		db: db,
	}
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := r.Header.Get("Authorization")

			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing access token"), "missing access token")
				return
			}

			callerID, role, err := ParseJWT(accessToken)
			if err != nil && strings.Contains(err.Error(), "invalid or expired token") {
				refreshToken := r.Header.Get("refresh_token")
				if refreshToken == "" {
					utils.RespondError(w, http.StatusUnauthorized, errors.New("missing refresh token"), "access token expired, and refresh token missing")
					return
				}
				callerID, err = ParseRefreshToken(refreshToken)
				if err != nil {
					utils.RespondError(w, http.StatusUnauthorized, err, "invalid or expired refresh token")
					return
				}

				// The role claim is not on the refresh token; re-derive it
				// from the directory the same way login does.
				role, err = a.lookupRole(r.Context(), callerID)
				if err != nil {
					utils.RespondError(w, http.StatusInternalServerError, err, "failed to resolve caller role")
					return
				}

				newAccessToken, err := GenerateJWT(callerID, role)
				if err != nil {
					utils.RespondError(w, http.StatusInternalServerError, err, "failed to generate access token")
					return
				}
				newRefreshToken, err := GenerateRefreshToken(callerID)
				if err != nil {
					utils.RespondError(w, http.StatusInternalServerError, err, "failed to generate refresh token")
					return
				}
				w.Header().Set("Authorization", newAccessToken)
				w.Header().Set("Refresh_token", newRefreshToken)
			} else if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), callerContextKey, callerID)
			ctx = context.WithValue(ctx, roleContextKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole is a pure authorization gate evaluated before any engine call.
// PowerIT passes every gate that admits HR or IT.
func (a *DefaultAuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool)
	for _, role := range allowedRoles {
		allowed[role] = true
		if role == models.HRRole || role == models.ITRole {
			allowed[models.PowerITRole] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, role, err := a.GetCallerFromContext(r)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if allowed[role] {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

func (a *DefaultAuthMiddleware) GetCallerFromContext(r *http.Request) (string, models.Role, error) {
	callerID, ok := r.Context().Value(callerContextKey).(string)
	if !ok {
		return "", "", errors.New("caller ID not found in context")
	}
	role, ok := r.Context().Value(roleContextKey).(string)
	if !ok {
		return "", "", errors.New("role not found in context")
	}
	return callerID, models.Role(role), nil
}

func (a *DefaultAuthMiddleware) lookupRole(ctx context.Context, callerID string) (string, error) {
	var role string
	err := a.db.GetContext(ctx, &role, `
		SELECT portal_role FROM employees
		WHERE id::text = $1 OR employee_code = $1
	`, callerID)
	if err != nil {
		return "", err
	}
	return role, nil
}
