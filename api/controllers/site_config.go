package controllers

import (
	"net/http"

	"github.com/orbya/portfolio-backend/api/responses"
	"github.com/orbya/portfolio-backend/api/validators"
	"github.com/orbya/portfolio-backend/internal/siteconfig"
	"github.com/orbya/portfolio-backend/pkg/logger"
)

func SiteConfigGet(svc siteconfig.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cfg)
	}
}

func SiteConfigUpdate(svc siteconfig.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req siteconfig.UpdateSiteConfigInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
