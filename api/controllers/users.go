package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/angelmondragon/shopadmin-backend/api/responses"
	"github.com/angelmondragon/shopadmin-backend/api/validators"
	"github.com/angelmondragon/shopadmin-backend/internal/adminusers"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func UserByUsername(svc adminusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetByUsername(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, user)
	}
}

func UserExists(svc adminusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exists, err := svc.Exists(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, map[string]bool{"exists": exists})
	}
}

func UserCount(svc adminusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Count(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, map[string]int64{"count": count})
	}
}

// UsersByIdentity lists the accounts attached to one identity. A malformed
// identity id matches nothing and yields an empty array.
func UsersByIdentity(svc adminusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identityID, err := strconv.ParseUint(strings.TrimSpace(chi.URLParam(r, "identityId")), 10, 64)
		if err != nil {
			responses.WriteJSON(w, http.StatusOK, []adminusers.AdminUserDTO{})
			return
		}
		users, err := svc.ListByIdentity(r.Context(), identityID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, users)
	}
}

func UserSearch(svc adminusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		field, err := validators.RequireQuery(r, "field")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		value, err := validators.RequireQuery(r, "value")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		users, err := svc.Search(ctx, field, value)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeValidation {
				err = typed.WithDetails(map[string]any{"field": field})
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, users)
	}
}
