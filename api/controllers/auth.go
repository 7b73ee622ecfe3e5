package controllers

import (
	"net/http"

	"github.com/orbya/portfolio-backend/api/responses"
	"github.com/orbya/portfolio-backend/api/validators"
	"github.com/orbya/portfolio-backend/internal/admin"
	"github.com/orbya/portfolio-backend/pkg/logger"
)

// AdminAuthLogin exchanges the shared admin password for a session token.
func AdminAuthLogin(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admin.AuthenticateInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Authenticate(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// AdminChangePassword rotates the shared admin password. Outstanding session
// tokens stop validating once the rotation lands.
func AdminChangePassword(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admin.ChangePasswordInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ChangePassword(r.Context(), req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "password changed"})
	}
}
