package repository

import (
	"context"

	"railticket/internal/domain"

	"gorm.io/gorm"
)

type BeneficiaryRepository struct {
	db *gorm.DB
}

func NewBeneficiaryRepository(db *gorm.DB) *BeneficiaryRepository {
	return &BeneficiaryRepository{db: db}
}

func (r *BeneficiaryRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Beneficiary, error) {
	var out []domain.Beneficiary
	if err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("created_at").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BeneficiaryRepository) GetByID(ctx context.Context, owner, id string) (*domain.Beneficiary, error) {
	var b domain.Beneficiary
	if err := r.db.WithContext(ctx).First(&b, "owner = ? AND id = ?", owner, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BeneficiaryRepository) Create(ctx context.Context, b *domain.Beneficiary) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// CreateAll inserts a batch inside one transaction; used when converting
// saved passengers.
func (r *BeneficiaryRepository) CreateAll(ctx context.Context, items []domain.Beneficiary) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *BeneficiaryRepository) Update(ctx context.Context, b *domain.Beneficiary) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BeneficiaryRepository) Delete(ctx context.Context, owner, id string) error {
	return r.db.WithContext(ctx).
		Where("owner = ? AND id = ?", owner, id).
		Delete(&domain.Beneficiary{}).Error
}
