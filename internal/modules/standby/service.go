package standby

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"railticket/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Matching is simulated: once a request is in matching, it succeeds when
// the clock passes successTarget or expires when it passes expireAt.
// The success target lands a short random interval after submission.
const (
	successDelayMin = 12 * time.Second
	successDelayMax = 32 * time.Second
)

type Service struct {
	standbys StandbyRepository
	events   Broadcaster

	now func() time.Time
}

func NewService(standbys StandbyRepository, events Broadcaster) *Service {
	return &Service{
		standbys: standbys,
		events:   events,
		now:      time.Now,
	}
}

// Create registers a waitlist application in submitted. The success target
// is drawn immediately so that paying at any later moment still races the
// original deadline, not a fresh one.
func (s *Service) Create(ctx context.Context, req CreateStandbyRequest) (*domain.StandbyRequest, error) {
	if len(req.Passengers) == 0 || len(req.SeatPrefs) == 0 || req.DeadlineMinutes <= 0 {
		return nil, ErrValidation
	}

	now := s.now()
	r := &domain.StandbyRequest{
		ID:              uuid.NewString(),
		Origin:          req.Origin,
		Dest:            req.Dest,
		Date:            req.Date,
		TrainCode:       req.TrainCode,
		Passengers:      req.Passengers,
		SeatPrefs:       req.SeatPrefs,
		DeadlineMinutes: req.DeadlineMinutes,
		Priority:        req.Priority,
		Deposit:         req.Deposit,
		Status:          domain.StandbySubmitted,
		SuccessTarget:   now.Add(successDelayMin + time.Duration(rand.Int63n(int64(successDelayMax-successDelayMin)))),
		ExpireAt:        now.Add(time.Duration(req.DeadlineMinutes) * time.Minute),
	}

	if err := s.standbys.Create(ctx, r); err != nil {
		return nil, err
	}
	s.notify()
	return r, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.StandbyRequest, error) {
	r, err := s.standbys.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) List(ctx context.Context) ([]domain.StandbyRequest, error) {
	return s.standbys.List(ctx)
}

// Pay moves a submitted request into matching. Paying anything else
// returns the record unchanged.
func (s *Service) Pay(ctx context.Context, id string) (*domain.StandbyRequest, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.StandbySubmitted {
		return r, nil
	}

	r.Status = domain.StandbyMatching
	if r.SuccessTarget.IsZero() {
		r.SuccessTarget = s.now().Add(successDelayMin + time.Duration(rand.Int63n(int64(successDelayMax-successDelayMin))))
	}
	if err := s.standbys.Update(ctx, r); err != nil {
		return nil, err
	}
	s.notify()
	return r, nil
}

// CheckStatus resolves a matching request against the clock. The expiry
// test runs first so a request past both targets expires rather than
// succeeds. Terminal states are never revisited.
func (s *Service) CheckStatus(ctx context.Context, id string) (*domain.StandbyRequest, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.StandbyMatching {
		return r, nil
	}

	now := s.now()
	switch {
	case !now.Before(r.ExpireAt):
		r.Status = domain.StandbyExpired
	case !now.Before(r.SuccessTarget):
		r.Status = domain.StandbySuccess
		r.MatchedSeat = r.SeatPrefs[rand.Intn(len(r.SeatPrefs))]
	default:
		return r, nil
	}

	if err := s.standbys.Update(ctx, r); err != nil {
		return nil, err
	}
	s.notify()
	return r, nil
}

// Cancel withdraws the request regardless of its current state.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.StandbyRequest, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Status = domain.StandbyCancelled
	if err := s.standbys.Update(ctx, r); err != nil {
		return nil, err
	}
	s.notify()
	return r, nil
}

func (s *Service) notify() {
	if s.events != nil {
		s.events.OrdersChanged()
	}
}
