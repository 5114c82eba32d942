package service

import (
	"context"
	"errors"
	"fmt"

	doctorserrors "pawbook/internal/doctors/errors"
	"pawbook/internal/doctors/repository"
	apperrors "pawbook/pkg/errors"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

type DoctorService interface {
	List(ctx context.Context) ([]*model.Doctor, error)
	GetByID(ctx context.Context, id int) (*model.Doctor, error)
}

type doctorService struct {
	repo   repository.DoctorRepository
	logger *logger.Logger
}

func NewDoctorService(repo repository.DoctorRepository, log *logger.Logger) DoctorService {
	return &doctorService{
		repo:   repo,
		logger: log,
	}
}

func (s *doctorService) List(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list doctors", err)
	}
	return doctors, nil
}

func (s *doctorService) GetByID(ctx context.Context, id int) (*model.Doctor, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("doctor id must be a positive integer")
	}

	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Doctor", fmt.Sprintf("%d", id))
		}
		return nil, apperrors.Internal("failed to find doctor", err)
	}
	return doctor, nil
}
