package auth

import (
	"context"

	"railticket/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByAccount(ctx context.Context, account string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByIdentifiers(ctx context.Context, username, email, phone string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
}

type SessionRepository interface {
	Get(ctx context.Context) (*domain.Session, error)
	Set(ctx context.Context, username string) error
	Clear(ctx context.Context) error
}

type AuthCodeRepository interface {
	SaveResetCode(ctx context.Context, code *domain.ResetCode) error
	GetResetCode(ctx context.Context, account string) (*domain.ResetCode, error)
	DeleteResetCode(ctx context.Context, account string) error
	CreateQrSession(ctx context.Context, s *domain.QrSession) error
	GetQrSession(ctx context.Context, id string) (*domain.QrSession, error)
	UpdateQrSession(ctx context.Context, s *domain.QrSession) error
}

type Broadcaster interface {
	SessionChanged(username string)
}

// DirectorySeeder receives a freshly registered account so the owner shows
// up in a directory (saved travellers, beneficiaries) as themselves.
type DirectorySeeder interface {
	EnsureSelf(ctx context.Context, u *domain.User) error
}
