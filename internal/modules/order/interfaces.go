package order

import (
	"context"

	"railticket/internal/domain"
)

// OrderRepository defines the persistence operations the order service
// needs.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
}

// Inventory is the slice of the trip catalog the order service mutates
// when booking and refunding.
type Inventory interface {
	Get(code string) (domain.Train, bool)
	DecrementInventory(code string, class domain.SeatClass, count int) int
	RestoreInventory(code string, class domain.SeatClass, count int) int
}

// Broadcaster pushes orderschange events to connected clients.
type Broadcaster interface {
	OrdersChanged()
}

// PointsCreditor awards member points after a successful payment.
type PointsCreditor interface {
	Credit(ctx context.Context, owner string, amount int64) error
}
