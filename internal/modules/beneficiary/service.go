package beneficiary

import (
	"context"
	"errors"
	"time"

	"railticket/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	beneficiaries BeneficiaryRepository
	passengers    PassengerDirectory

	now func() time.Time
}

func NewService(beneficiaries BeneficiaryRepository, passengers PassengerDirectory) *Service {
	return &Service{
		beneficiaries: beneficiaries,
		passengers:    passengers,
		now:           time.Now,
	}
}

// EnsureSelf upserts the owner's own entry from the account record,
// matched by full name.
func (s *Service) EnsureSelf(ctx context.Context, u *domain.User) error {
	list, err := s.beneficiaries.ListByOwner(ctx, u.Username)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].Name == u.FullName {
			b := list[i]
			b.IDType = u.IDType
			b.IDNo = u.IDNo
			b.PhoneCode = u.PhoneCode
			b.PhoneNumber = u.PhoneNumber
			b.Email = u.Email
			return s.beneficiaries.Update(ctx, &b)
		}
	}

	return s.beneficiaries.Create(ctx, &domain.Beneficiary{
		ID:            uuid.NewString(),
		Owner:         u.Username,
		Name:          u.FullName,
		IDType:        u.IDType,
		IDNo:          u.IDNo,
		PhoneCode:     u.PhoneCode,
		PhoneNumber:   u.PhoneNumber,
		Email:         u.Email,
		EffectiveDate: s.today(),
		Verified:      true,
	})
}

func (s *Service) List(ctx context.Context, owner string) ([]domain.Beneficiary, error) {
	return s.beneficiaries.ListByOwner(ctx, owner)
}

func (s *Service) Get(ctx context.Context, owner, id string) (*domain.Beneficiary, error) {
	b, err := s.beneficiaries.GetByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Add appends a recipient, subject to the per-owner cap and unique names.
// An entry with the same name and document as the payload does not count
// against the cap, so re-adding oneself cannot hit the limit.
func (s *Service) Add(ctx context.Context, owner string, req AddBeneficiaryRequest) (*domain.Beneficiary, error) {
	if req.Name == "" || req.IDNo == "" {
		return nil, ErrValidation
	}

	list, err := s.beneficiaries.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	others := 0
	for i := range list {
		if !(list[i].Name == req.Name && list[i].IDNo == req.IDNo) {
			others++
		}
	}
	if others >= domain.BeneficiaryLimit {
		return nil, ErrLimit
	}
	for i := range list {
		if list[i].Name == req.Name {
			return nil, &DuplicateNameError{Name: req.Name}
		}
	}

	effective := req.EffectiveDate
	if effective == "" {
		effective = s.today()
	}

	b := &domain.Beneficiary{
		ID:            uuid.NewString(),
		Owner:         owner,
		Name:          req.Name,
		IDType:        req.IDType,
		IDNo:          req.IDNo,
		Gender:        req.Gender,
		BirthDate:     req.BirthDate,
		PhoneCode:     req.PhoneCode,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		EffectiveDate: effective,
		Verified:      true,
	}
	if err := s.beneficiaries.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, owner, id string, req UpdateBeneficiaryRequest) (*domain.Beneficiary, error) {
	b, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if req.PhoneCode != "" {
		b.PhoneCode = req.PhoneCode
	}
	if req.PhoneNumber != "" {
		b.PhoneNumber = req.PhoneNumber
	}
	if req.Email != "" {
		b.Email = req.Email
	}
	if err := s.beneficiaries.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, owner, id string) error {
	return s.beneficiaries.Delete(ctx, owner, id)
}

// FromPassengers converts saved travellers into recipients in one batch.
// The whole batch is rejected on the first duplicate name or when it
// would push the directory past the cap.
func (s *Service) FromPassengers(ctx context.Context, owner string, ids []string) ([]domain.Beneficiary, error) {
	if len(ids) == 0 {
		return nil, ErrValidation
	}

	list, err := s.beneficiaries.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(list))
	for i := range list {
		existing[list[i].Name] = true
	}

	batch := make([]domain.Beneficiary, 0, len(ids))
	for _, id := range ids {
		p, err := s.passengers.GetByID(ctx, owner, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if existing[p.Name] {
			return nil, &DuplicateNameError{Name: p.Name}
		}
		batch = append(batch, domain.Beneficiary{
			ID:            uuid.NewString(),
			Owner:         owner,
			Name:          p.Name,
			IDType:        p.IDType,
			IDNo:          p.IDNo,
			PhoneCode:     p.PhoneCode,
			PhoneNumber:   p.PhoneNumber,
			EffectiveDate: s.today(),
			Verified:      true,
		})
	}

	if len(list)+len(batch) > domain.BeneficiaryLimit {
		return nil, ErrLimit
	}
	if err := s.beneficiaries.CreateAll(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}
