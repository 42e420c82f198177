package repository

import (
	"context"

	"railticket/internal/domain"

	"gorm.io/gorm"
)

type PassengerRepository struct {
	db *gorm.DB
}

func NewPassengerRepository(db *gorm.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

func (r *PassengerRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Passenger, error) {
	var out []domain.Passenger
	err := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("is_self DESC, created_at").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PassengerRepository) GetByID(ctx context.Context, owner, id string) (*domain.Passenger, error) {
	var p domain.Passenger
	if err := r.db.WithContext(ctx).First(&p, "owner = ? AND id = ?", owner, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PassengerRepository) FindSelf(ctx context.Context, owner string) (*domain.Passenger, error) {
	var p domain.Passenger
	if err := r.db.WithContext(ctx).First(&p, "owner = ? AND is_self = ?", owner, true).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PassengerRepository) DeleteByIDs(ctx context.Context, owner string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("owner = ? AND id IN ?", owner, ids).
		Delete(&domain.Passenger{}).Error
}
