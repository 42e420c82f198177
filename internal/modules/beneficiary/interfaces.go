package beneficiary

import (
	"context"

	"railticket/internal/domain"
)

type BeneficiaryRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.Beneficiary, error)
	GetByID(ctx context.Context, owner, id string) (*domain.Beneficiary, error)
	Create(ctx context.Context, b *domain.Beneficiary) error
	CreateAll(ctx context.Context, items []domain.Beneficiary) error
	Update(ctx context.Context, b *domain.Beneficiary) error
	Delete(ctx context.Context, owner, id string) error
}

// PassengerDirectory is the slice of the saved-traveller store needed to
// convert passengers into beneficiaries.
type PassengerDirectory interface {
	GetByID(ctx context.Context, owner, id string) (*domain.Passenger, error)
}
