package passenger

import (
	"context"

	"railticket/internal/domain"
)

type PassengerRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.Passenger, error)
	GetByID(ctx context.Context, owner, id string) (*domain.Passenger, error)
	FindSelf(ctx context.Context, owner string) (*domain.Passenger, error)
	Create(ctx context.Context, p *domain.Passenger) error
	Update(ctx context.Context, p *domain.Passenger) error
	DeleteByIDs(ctx context.Context, owner string, ids []string) error
}
