package service

import (
	"context"
	"errors"
	"io"
	"testing"

	doctorserrors "pawbook/internal/doctors/errors"
	apperrors "pawbook/pkg/errors"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

type mockRepository struct {
	FindAllFunc  func(ctx context.Context) ([]*model.Doctor, error)
	FindByIDFunc func(ctx context.Context, id int) (*model.Doctor, error)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]*model.Doctor, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockRepository) FindByID(ctx context.Context, id int) (*model.Doctor, error) {
	return m.FindByIDFunc(ctx, id)
}

func newTestService(repo *mockRepository) DoctorService {
	return NewDoctorService(repo, logger.New(logger.Config{Output: io.Discard, Service: "test"}))
}

func TestList(t *testing.T) {
	repo := &mockRepository{
		FindAllFunc: func(context.Context) ([]*model.Doctor, error) {
			return []*model.Doctor{
				{ID: 1, Name: "Dr. Ashok Kumar"},
				{ID: 2, Name: "Dr. Rajesh Kumar"},
			}, nil
		},
	}
	svc := newTestService(repo)

	doctors, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(doctors) != 2 {
		t.Errorf("expected 2 doctors, got %d", len(doctors))
	}
}

func TestListRepositoryFailure(t *testing.T) {
	repo := &mockRepository{
		FindAllFunc: func(context.Context) ([]*model.Doctor, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestService(repo)

	_, err := svc.List(context.Background())
	if apperrors.AsAppError(err).Code != apperrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	repo := &mockRepository{
		FindByIDFunc: func(_ context.Context, id int) (*model.Doctor, error) {
			if id == 3 {
				return &model.Doctor{ID: 3, Name: "Dr. Priya Mehta"}, nil
			}
			return nil, doctorserrors.ErrNotFound
		},
	}
	svc := newTestService(repo)

	doctor, err := svc.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if doctor.Name != "Dr. Priya Mehta" {
		t.Errorf("unexpected doctor: %+v", doctor)
	}

	_, err = svc.GetByID(context.Background(), 99)
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected not found, got %v", err)
	}

	for _, id := range []int{0, -1} {
		_, err = svc.GetByID(context.Background(), id)
		if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
			t.Errorf("id %d: expected invalid input, got %v", id, err)
		}
	}
}
