package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "pawbook/pkg/errors"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

type mockDoctorService struct {
	ListFunc    func(ctx context.Context) ([]*model.Doctor, error)
	GetByIDFunc func(ctx context.Context, id int) (*model.Doctor, error)
}

func (m *mockDoctorService) List(ctx context.Context) ([]*model.Doctor, error) {
	return m.ListFunc(ctx)
}

func (m *mockDoctorService) GetByID(ctx context.Context, id int) (*model.Doctor, error) {
	return m.GetByIDFunc(ctx, id)
}

func newTestRouter(svc *mockDoctorService) *httprouter.Router {
	log := logger.New(logger.Config{Output: io.Discard, Service: "test"})
	router := httprouter.New()
	NewDoctorHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestGetAllDoctors(t *testing.T) {
	svc := &mockDoctorService{
		ListFunc: func(context.Context) ([]*model.Doctor, error) {
			return []*model.Doctor{
				{ID: 1, Name: "Dr. Ashok Kumar", Specialty: "General Veterinary Medicine", Timings: model.StringList{"09:00-13:00"}, AvailableDays: model.StringList{"Monday"}},
			}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Dr. Ashok Kumar" {
		t.Errorf("unexpected payload: %v", got)
	}
	if _, ok := got[0]["timings"].([]any); !ok {
		t.Errorf("expected timings as JSON array, got %v", got[0]["timings"])
	}
}

func TestGetAllDoctorsEmpty(t *testing.T) {
	svc := &mockDoctorService{
		ListFunc: func(context.Context) ([]*model.Doctor, error) {
			return nil, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestGetDoctorByID(t *testing.T) {
	svc := &mockDoctorService{
		GetByIDFunc: func(_ context.Context, id int) (*model.Doctor, error) {
			if id == 2 {
				return &model.Doctor{ID: 2, Name: "Dr. Rajesh Kumar"}, nil
			}
			return nil, apperrors.NotFoundWithID("Doctor", "99")
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/doctors/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/doctors/99", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetDoctorByIDNonNumeric(t *testing.T) {
	router := newTestRouter(&mockDoctorService{})

	req := httptest.NewRequest(http.MethodGet, "/doctors/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
