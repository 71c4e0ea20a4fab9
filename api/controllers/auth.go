package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopadmin-backend/api/responses"
	"github.com/angelmondragon/shopadmin-backend/api/validators"
	"github.com/angelmondragon/shopadmin-backend/internal/adminusers"
	"github.com/angelmondragon/shopadmin-backend/internal/auth"
	pkgAuth "github.com/angelmondragon/shopadmin-backend/pkg/auth"
	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/logger"
	"github.com/angelmondragon/shopadmin-backend/pkg/metrics"
)

const invalidCredentials = "invalid credentials"

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*auth.AuthResult
}

// AuthLogin verifies admin credentials. Unknown usernames get the same 401
// as wrong passwords.
func AuthLogin(svc auth.Service, m *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Authenticate(ctx, body.Username, body.Password)
		if err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
				err = pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, invalidCredentials)
			}
			if pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
				m.IncLogin(metrics.LoginFailure)
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.IncLogin(metrics.LoginSuccess)
		if logg != nil {
			logg.Info(logg.WithAdminID(ctx, result.User.ID), "auth.login")
		}
		responses.WriteJSON(w, http.StatusOK, loginResponse{
			Success:    true,
			Message:    "authentication successful",
			AuthResult: result,
		})
	}
}

// AuthLogout revokes the session tied to the presented access token.
func AuthLogout(svc auth.Service, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if !cfg.Enabled() {
			responses.WriteMessage(w, http.StatusOK, "logged out")
			return
		}

		token, err := validators.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}
		claims, err := pkgAuth.ParseAccessToken(cfg, token)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
			return
		}

		if err := svc.Logout(ctx, claims.ID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "logged out")
	}
}

func ChangePassword(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "id", pkgerrors.NotFound(adminusers.Entity))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body auth.ChangePasswordRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.ChangePassword(ctx, id, body.NewPassword); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusOK, "password updated successfully", id)
	}
}

type resetPasswordResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
}

// ResetPassword sets a new password by username. Without new_password the
// server generates one and returns it once.
func ResetPassword(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body auth.ResetPasswordRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		generated, err := svc.ResetPassword(ctx, body.Username, body.NewPassword)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, resetPasswordResponse{
			Success:           true,
			Message:           "password reset successfully",
			TemporaryPassword: generated,
		})
	}
}
