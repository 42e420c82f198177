package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"railticket/internal/domain"
	"railticket/internal/modules/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// refundCutoff is how close to departure a refund is still accepted.
const refundCutoff = 60 * time.Minute

// rescheduleCutoff is the window inside which a reschedule may no longer
// move the order to a later date.
const rescheduleCutoff = 48 * time.Hour

var seatLetters = []string{"A", "B", "C", "D", "F"}

// Service owns the order state machine: pending -> paid -> refunding ->
// cancelled, with pending -> cancelled as the only direct cancellation.
type Service struct {
	orders    OrderRepository
	inventory Inventory
	events    Broadcaster

	// refundDelay simulates refund processing between the accepted
	// request and the final cancelled state.
	refundDelay time.Duration

	now func() time.Time

	mu           sync.Mutex
	refundTimers map[string]*time.Timer
}

func NewService(orders OrderRepository, inventory Inventory, events Broadcaster, refundDelay time.Duration) *Service {
	return &Service{
		orders:       orders,
		inventory:    inventory,
		events:       events,
		refundDelay:  refundDelay,
		now:          time.Now,
		refundTimers: make(map[string]*time.Timer),
	}
}

// NewGroupID returns a fresh correlation id for linking the legs of a
// round trip or connecting journey.
func NewGroupID() string { return uuid.NewString() }

// Create books the order and immediately decrements seat inventory by the
// passenger count. The order starts in pending.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if len(req.Passengers) == 0 || req.TrainCode == "" || req.Date == "" {
		return nil, ErrValidation
	}

	o := &domain.Order{
		ID:         uuid.NewString(),
		Origin:     req.Origin,
		Dest:       req.Dest,
		Date:       req.Date,
		Passengers: req.Passengers,
		Item: domain.OrderItem{
			TrainCode: req.TrainCode,
			SeatClass: req.SeatClass,
			Price:     req.Price,
		},
		Status:  domain.OrderPending,
		GroupID: req.GroupID,
	}

	s.inventory.DecrementInventory(req.TrainCode, req.SeatClass, len(req.Passengers))

	if err := s.orders.Create(ctx, o); err != nil {
		// booking failed: put the seats back
		s.inventory.RestoreInventory(req.TrainCode, req.SeatClass, len(req.Passengers))
		return nil, err
	}

	s.notifyOrdersChanged()
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// Pay settles a pending order and assigns the carriage and seat.
func (s *Service) Pay(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderPending {
		return nil, ErrInvalidStatus
	}

	o.Item.Carriage = rand.Intn(16) + 1
	o.Item.SeatNo = fmt.Sprintf("%02d%s", rand.Intn(16)+1, seatLetters[rand.Intn(len(seatLetters))])
	o.Status = domain.OrderPaid

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	s.notifyOrdersChanged()
	return o, nil
}

// Cancel withdraws an unpaid order. Paid orders must go through the
// refund path so inventory is restored.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderPending {
		return nil, ErrInvalidStatus
	}

	o.Status = domain.OrderCancelled
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	s.notifyOrdersChanged()
	return o, nil
}

// Refund accepts a refund for a paid order departing at least 60 minutes
// from now. The order moves to refunding immediately; after the simulated
// processing delay it reaches cancelled and the seats return to
// inventory.
func (s *Service) Refund(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderPaid {
		return nil, ErrInvalidStatus
	}

	dep, err := s.departureTime(o)
	if err != nil {
		return nil, err
	}
	if dep.Sub(s.now()) < refundCutoff {
		return nil, ErrRefundWindowClosed
	}

	o.Status = domain.OrderRefunding
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	s.notifyOrdersChanged()

	s.mu.Lock()
	s.refundTimers[id] = time.AfterFunc(s.refundDelay, func() { s.completeRefund(id) })
	s.mu.Unlock()

	return o, nil
}

// completeRefund finishes a pending refund. The status is re-checked so a
// record that moved on in the meantime cannot be cancelled twice or have
// its inventory restored spuriously.
func (s *Service) completeRefund(id string) {
	s.mu.Lock()
	delete(s.refundTimers, id)
	s.mu.Unlock()

	ctx := context.Background()
	o, err := s.orders.GetByID(ctx, id)
	if err != nil || o.Status != domain.OrderRefunding {
		return
	}

	s.inventory.RestoreInventory(o.Item.TrainCode, o.Item.SeatClass, len(o.Passengers))
	o.Status = domain.OrderCancelled
	if err := s.orders.Update(ctx, o); err != nil {
		return
	}
	s.notifyOrdersChanged()
}

// Shutdown stops all pending refund timers. Refunds interrupted here stay
// in refunding; there is no durability guarantee for the simulated delay.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.refundTimers {
		t.Stop()
		delete(s.refundTimers, id)
	}
}

// ChangeDestination rewrites the destination of a pending or paid order.
// Same destination is a no-op. A paid order whose train already departed
// cannot be changed. Changes are counted but not capped; any change
// permanently blocks rescheduling.
func (s *Service) ChangeDestination(ctx context.Context, id, newDest string) (*domain.Order, error) {
	if newDest == "" {
		return nil, ErrValidation
	}

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if newDest == o.Dest {
		return o, nil
	}
	if o.Status != domain.OrderPending && o.Status != domain.OrderPaid {
		return nil, ErrInvalidStatus
	}

	if o.Status == domain.OrderPaid {
		if dep, err := s.departureTime(o); err == nil && !dep.After(s.now()) {
			return nil, ErrAlreadyDeparted
		}
	}

	o.Dest = newDest
	o.ChangeDestCount++
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	s.notifyOrdersChanged()
	return o, nil
}

// RescheduleDate moves the travel date. Each ticket may be rescheduled
// once, never after a destination change, never into the past, and the
// timing rules apply: inside 48 hours of departure the new date may not
// be later than the current one; after departure only the same date is
// accepted.
func (s *Service) RescheduleDate(ctx context.Context, id, newDate string) (*domain.Order, error) {
	if _, err := time.ParseInLocation("2006-01-02", newDate, time.Local); err != nil {
		return nil, ErrValidation
	}

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderPending && o.Status != domain.OrderPaid {
		return nil, ErrInvalidStatus
	}

	// YYYY-MM-DD compares correctly as a string
	today := s.now().Format("2006-01-02")
	if newDate < today {
		return nil, ErrDateInPast
	}
	if o.RescheduleCount >= 1 {
		return nil, ErrRescheduleUsed
	}
	if o.ChangeDestCount > 0 {
		return nil, ErrRescheduleBlocked
	}

	if dep, err := s.departureTime(o); err == nil {
		now := s.now()
		if dep.After(now) {
			if dep.Sub(now) < rescheduleCutoff && newDate > o.Date {
				return nil, ErrRescheduleWindow
			}
		} else if newDate != o.Date {
			// departed: only a same-day reissue is possible
			return nil, ErrRescheduleWindow
		}
	}

	o.Date = newDate
	o.RescheduleCount++
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	s.notifyOrdersChanged()
	return o, nil
}

func (s *Service) departureTime(o *domain.Order) (time.Time, error) {
	t, ok := s.inventory.Get(o.Item.TrainCode)
	if !ok {
		return time.Time{}, ErrNotFound
	}
	dep, err := catalog.DepartureTime(t, o.Date)
	if err != nil {
		return time.Time{}, ErrValidation
	}
	return dep, nil
}

func (s *Service) notifyOrdersChanged() {
	if s.events != nil {
		s.events.OrdersChanged()
	}
}
