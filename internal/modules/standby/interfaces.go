package standby

import (
	"context"

	"railticket/internal/domain"
)

type StandbyRepository interface {
	Create(ctx context.Context, s *domain.StandbyRequest) error
	GetByID(ctx context.Context, id string) (*domain.StandbyRequest, error)
	List(ctx context.Context) ([]domain.StandbyRequest, error)
	Update(ctx context.Context, s *domain.StandbyRequest) error
}

type Broadcaster interface {
	OrdersChanged()
}
