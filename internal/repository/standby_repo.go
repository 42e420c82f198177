package repository

import (
	"context"

	"railticket/internal/domain"

	"gorm.io/gorm"
)

type StandbyRepository struct {
	db *gorm.DB
}

func NewStandbyRepository(db *gorm.DB) *StandbyRepository {
	return &StandbyRepository{db: db}
}

func (r *StandbyRepository) Create(ctx context.Context, s *domain.StandbyRequest) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StandbyRepository) GetByID(ctx context.Context, id string) (*domain.StandbyRequest, error) {
	var s domain.StandbyRequest
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StandbyRepository) List(ctx context.Context) ([]domain.StandbyRequest, error) {
	var out []domain.StandbyRequest
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StandbyRepository) Update(ctx context.Context, s *domain.StandbyRequest) error {
	return r.db.WithContext(ctx).Save(s).Error
}
