package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/orbya/portfolio-backend/api/responses"
	"github.com/orbya/portfolio-backend/api/validators"
	"github.com/orbya/portfolio-backend/internal/content"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/logger"
)

func StatList(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListStats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// StatReplace accepts the full ordered stat list and replaces the stored
// sequence with it.
func StatReplace(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req []content.StatDTO
		if err := decodeJSONArray(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		for i := range req {
			if err := validators.ValidateStruct(&req[i]); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		saved, err := svc.ReplaceStats(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, saved)
	}
}

func QuoteList(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListQuotes(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// QuoteReplace mirrors StatReplace for the quote rotation.
func QuoteReplace(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req []content.QuoteDTO
		if err := decodeJSONArray(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		for i := range req {
			if err := validators.ValidateStruct(&req[i]); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		saved, err := svc.ReplaceQuotes(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, saved)
	}
}

func decodeJSONArray(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").WithDetails(map[string]any{"error": err.Error()})
	}
	return nil
}
