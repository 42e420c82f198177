package repository

import (
	"context"

	"railticket/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindByAccount looks a user up by username, email or phone number — the
// three identifiers accepted on the login form.
func (r *UserRepository) FindByAccount(ctx context.Context, account string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR (email <> '' AND email = ?) OR (phone_number <> '' AND phone_number = ?)",
			account, account, account).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByIdentifiers reports whether any user already claims the
// username, email or phone number. Empty email/phone are ignored.
func (r *UserRepository) ExistsByIdentifiers(ctx context.Context, username, email, phone string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", username)
	if email != "" {
		q = q.Or("email = ?", email)
	}
	if phone != "" {
		q = q.Or("phone_number = ?", phone)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
