package repository

import (
	"context"

	"railticket/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository persists the single current-session pointer. The demo
// models one logged-in account at a time, so the table holds at most one
// row.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	var s domain.Session
	if err := r.db.WithContext(ctx).First(&s, "id = ?", domain.SessionRowID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Set(ctx context.Context, username string) error {
	s := domain.Session{ID: domain.SessionRowID, Username: username}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&s).Error
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&domain.Session{}, "id = ?", domain.SessionRowID).Error
}
