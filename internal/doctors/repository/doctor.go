package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	doctorserrors "pawbook/internal/doctors/errors"
	"pawbook/pkg/config"
	"pawbook/pkg/model"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]*model.Doctor, error)
	FindByID(ctx context.Context, id int) (*model.Doctor, error)
}

type gormDoctorRepository struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewGormDoctorRepository(cfg *config.Config, db *gorm.DB) DoctorRepository {
	return &gormDoctorRepository{
		cfg: cfg,
		db:  db,
	}
}

func (r *gormDoctorRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *gormDoctorRepository) FindAll(ctx context.Context) ([]*model.Doctor, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var doctors []*model.Doctor
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *gormDoctorRepository) FindByID(ctx context.Context, id int) (*model.Doctor, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var doctor model.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, doctorserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find doctor: %w", err)
	}
	return &doctor, nil
}
