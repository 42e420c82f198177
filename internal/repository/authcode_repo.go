package repository

import (
	"context"

	"railticket/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuthCodeRepository stores password-reset codes and qr login sessions.
type AuthCodeRepository struct {
	db *gorm.DB
}

func NewAuthCodeRepository(db *gorm.DB) *AuthCodeRepository {
	return &AuthCodeRepository{db: db}
}

// SaveResetCode overwrites any previous code for the account.
func (r *AuthCodeRepository) SaveResetCode(ctx context.Context, code *domain.ResetCode) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account"}},
		UpdateAll: true,
	}).Create(code).Error
}

func (r *AuthCodeRepository) GetResetCode(ctx context.Context, account string) (*domain.ResetCode, error) {
	var c domain.ResetCode
	if err := r.db.WithContext(ctx).First(&c, "account = ?", account).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *AuthCodeRepository) DeleteResetCode(ctx context.Context, account string) error {
	return r.db.WithContext(ctx).Delete(&domain.ResetCode{}, "account = ?", account).Error
}

func (r *AuthCodeRepository) CreateQrSession(ctx context.Context, s *domain.QrSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *AuthCodeRepository) GetQrSession(ctx context.Context, id string) (*domain.QrSession, error) {
	var s domain.QrSession
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AuthCodeRepository) UpdateQrSession(ctx context.Context, s *domain.QrSession) error {
	return r.db.WithContext(ctx).Save(s).Error
}
