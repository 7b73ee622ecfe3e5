package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orbya/portfolio-backend/api/responses"
	"github.com/orbya/portfolio-backend/internal/media"
	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/enums"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/logger"
)

// MediaUpload accepts a multipart upload under the form field "file". The
// media type is inferred from the file content, so images and videos share
// one endpoint.
func MediaUpload(svc media.Service, cfg config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Bound the whole request before parsing so an oversized body fails
		// early instead of filling the temp dir.
		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes()+1024)

		file, header, err := r.FormFile("file")
		if err != nil {
			if _, tooLarge := err.(*http.MaxBytesError); tooLarge {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodePayloadTooLarge, "upload exceeds the configured ceiling"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "multipart field \"file\" is required"))
			return
		}
		defer file.Close()

		uploaded, err := svc.Upload(r.Context(), media.UploadInput{
			FileName:  header.Filename,
			SizeBytes: header.Size,
			Body:      file,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, uploaded)
	}
}

// MediaList returns every stored file, partitioned into images and videos.
func MediaList(svc media.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		library, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, library)
	}
}

func MediaDelete(svc media.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaType, err := mediaTypeFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fileName := chi.URLParam(r, "fileName")
		if err := svc.Delete(r.Context(), mediaType, fileName); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func mediaTypeFromURL(r *http.Request) (enums.MediaType, error) {
	raw := chi.URLParam(r, "mediaType")
	mediaType, err := enums.ParseMediaType(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid media type")
	}
	return mediaType, nil
}
