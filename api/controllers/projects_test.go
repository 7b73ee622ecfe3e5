package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/orbya/portfolio-backend/internal/projects"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
)

type stubProjectService struct {
	dto  *projects.ProjectDTO
	list []projects.ProjectDTO
	err  error

	gotCreate *projects.CreateProjectInput
}

func (s *stubProjectService) List(context.Context) ([]projects.ProjectDTO, error) {
	return s.list, s.err
}

func (s *stubProjectService) Get(context.Context, uuid.UUID) (*projects.ProjectDTO, error) {
	return s.dto, s.err
}

func (s *stubProjectService) Create(_ context.Context, input projects.CreateProjectInput) (*projects.ProjectDTO, error) {
	s.gotCreate = &input
	return s.dto, s.err
}

func (s *stubProjectService) Update(context.Context, uuid.UUID, projects.UpdateProjectInput) (*projects.ProjectDTO, error) {
	return s.dto, s.err
}

func (s *stubProjectService) Delete(context.Context, uuid.UUID) error {
	return s.err
}

func withURLParam(r *http.Request, pairs ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rctx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestProjectCreateSuccess(t *testing.T) {
	dto := &projects.ProjectDTO{ID: uuid.New(), Title: "Neon Reel", Category: "motion", AspectRatio: "16:9"}
	svc := &stubProjectService{dto: dto}
	handler := ProjectCreate(svc, nil)

	body, _ := json.Marshal(map[string]any{
		"title":    "Neon Reel",
		"category": "motion",
		"tags":     []string{"3d"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotCreate == nil || svc.gotCreate.Title != "Neon Reel" {
		t.Fatalf("service did not receive input: %+v", svc.gotCreate)
	}

	var envelope struct {
		Data projects.ProjectDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != dto.ID {
		t.Fatalf("expected id %s got %s", dto.ID, envelope.Data.ID)
	}
}

func TestProjectCreateMissingTitle(t *testing.T) {
	handler := ProjectCreate(&stubProjectService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader([]byte(`{"category":"motion"}`)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code, got %s", envelope.Error.Code)
	}
	if _, ok := envelope.Error.Details["title"]; !ok {
		t.Fatalf("expected title detail, got %+v", envelope.Error.Details)
	}
}

func TestProjectGetNotFound(t *testing.T) {
	svc := &stubProjectService{err: pkgerrors.New(pkgerrors.CodeNotFound, "project not found")}
	handler := ProjectGet(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/"+uuid.NewString(), nil)
	req = withURLParam(req, "projectId", uuid.NewString())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestProjectGetRejectsBadID(t *testing.T) {
	handler := ProjectGet(&stubProjectService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/not-a-uuid", nil)
	req = withURLParam(req, "projectId", "not-a-uuid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
