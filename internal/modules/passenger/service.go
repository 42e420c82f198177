package passenger

import (
	"context"
	"errors"

	"railticket/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	passengers PassengerRepository
}

func NewService(passengers PassengerRepository) *Service {
	return &Service{passengers: passengers}
}

// EnsureSelf upserts the owner's own entry from the account record. The
// id and creation time of an existing entry are preserved so the self row
// stays first in the directory.
func (s *Service) EnsureSelf(ctx context.Context, u *domain.User) error {
	existing, err := s.passengers.FindSelf(ctx, u.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing == nil {
		return s.passengers.Create(ctx, &domain.Passenger{
			ID:          uuid.NewString(),
			Owner:       u.Username,
			IsSelf:      true,
			Name:        u.FullName,
			IDType:      u.IDType,
			IDNo:        u.IDNo,
			PhoneCode:   u.PhoneCode,
			PhoneNumber: u.PhoneNumber,
			Benefit:     u.Benefit,
			Verified:    true,
		})
	}

	existing.Name = u.FullName
	existing.IDType = u.IDType
	existing.IDNo = u.IDNo
	existing.PhoneCode = u.PhoneCode
	existing.PhoneNumber = u.PhoneNumber
	existing.Benefit = u.Benefit
	return s.passengers.Update(ctx, existing)
}

func (s *Service) List(ctx context.Context, owner string) ([]domain.Passenger, error) {
	return s.passengers.ListByOwner(ctx, owner)
}

func (s *Service) Get(ctx context.Context, owner, id string) (*domain.Passenger, error) {
	p, err := s.passengers.GetByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Add(ctx context.Context, owner string, req AddPassengerRequest) (*domain.Passenger, error) {
	if req.Name == "" || req.IDNo == "" {
		return nil, ErrValidation
	}

	benefit := req.Benefit
	if benefit == "" {
		benefit = domain.BenefitAdult
	}

	p := &domain.Passenger{
		ID:          uuid.NewString(),
		Owner:       owner,
		Name:        req.Name,
		IDType:      req.IDType,
		IDNo:        req.IDNo,
		PhoneCode:   req.PhoneCode,
		PhoneNumber: req.PhoneNumber,
		Benefit:     benefit,
		Verified:    true,
	}
	if err := s.passengers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, owner, id string, req UpdatePassengerRequest) (*domain.Passenger, error) {
	p, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if req.PhoneCode != "" {
		p.PhoneCode = req.PhoneCode
	}
	if req.PhoneNumber != "" {
		p.PhoneNumber = req.PhoneNumber
	}
	if req.Benefit != "" {
		p.Benefit = req.Benefit
	}
	if err := s.passengers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, owner string, ids ...string) error {
	if len(ids) == 0 {
		return ErrValidation
	}
	return s.passengers.DeleteByIDs(ctx, owner, ids)
}
