package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orbya/portfolio-backend/internal/media"
	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/enums"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
)

type stubMediaService struct {
	dto     *media.FileDTO
	library *media.LibraryDTO
	err     error

	gotType enums.MediaType
	gotName string
}

func (s *stubMediaService) Upload(_ context.Context, input media.UploadInput) (*media.FileDTO, error) {
	s.gotName = input.FileName
	if input.Body != nil {
		io.Copy(io.Discard, input.Body)
	}
	return s.dto, s.err
}

func (s *stubMediaService) ListAll(_ context.Context) (*media.LibraryDTO, error) {
	return s.library, s.err
}

func (s *stubMediaService) Delete(_ context.Context, mediaType enums.MediaType, fileName string) error {
	s.gotType = mediaType
	s.gotName = fileName
	return s.err
}

func multipartBody(t *testing.T, field, fileName string, contents []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(contents); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestMediaUploadSuccess(t *testing.T) {
	svc := &stubMediaService{dto: &media.FileDTO{FileName: "x_thumb.png", URL: "/uploads/images/x_thumb.png", Type: "image"}}
	handler := MediaUpload(svc, config.MediaConfig{Root: t.TempDir(), PublicBase: "/uploads", MaxUploadMB: 1}, nil)

	body, contentType := multipartBody(t, "file", "thumb.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotName != "thumb.png" {
		t.Fatalf("service got name=%s", svc.gotName)
	}
}

func TestMediaUploadMissingFileField(t *testing.T) {
	handler := MediaUpload(&stubMediaService{}, config.MediaConfig{Root: t.TempDir(), PublicBase: "/uploads", MaxUploadMB: 1}, nil)

	body, contentType := multipartBody(t, "wrong", "thumb.png", []byte("png"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestMediaListPartitionsByType(t *testing.T) {
	svc := &stubMediaService{library: &media.LibraryDTO{
		Images: []media.FileDTO{{FileName: "a.png", Type: "image"}},
		Videos: []media.FileDTO{},
	}}
	handler := MediaList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/media", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data struct {
			Images []media.FileDTO `json:"images"`
			Videos []media.FileDTO `json:"videos"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Images) != 1 || envelope.Data.Images[0].FileName != "a.png" {
		t.Fatalf("unexpected images: %+v", envelope.Data.Images)
	}
	if envelope.Data.Videos == nil || len(envelope.Data.Videos) != 0 {
		t.Fatalf("unexpected videos: %+v", envelope.Data.Videos)
	}
}

func TestMediaDeleteRejectsUnknownType(t *testing.T) {
	handler := MediaDelete(&stubMediaService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/media/documents/a.pdf", nil)
	req = withURLParam(req, "mediaType", "documents", "fileName", "a.pdf")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestMediaDeleteNotFound(t *testing.T) {
	svc := &stubMediaService{err: pkgerrors.New(pkgerrors.CodeNotFound, "media file not found")}
	handler := MediaDelete(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/media/images/ghost.png", nil)
	req = withURLParam(req, "mediaType", "images", "fileName", "ghost.png")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("expected not-found code, got %s", envelope.Error.Code)
	}
}
