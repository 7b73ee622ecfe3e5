package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/orbya/portfolio-backend/api/responses"
	"github.com/orbya/portfolio-backend/pkg/config"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/logger"
)

// ResumeDownload streams the resume PDF from disk as an attachment.
func ResumeDownload(cfg config.ResumeConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(cfg.Path); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "resume not available"))
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cfg.FileName))
		http.ServeFile(w, r, cfg.Path)
	}
}

// Root returns a small service banner.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]string{"service": "portfolio-backend"})
	}
}
