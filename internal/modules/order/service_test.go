package order

import (
	"context"
	"regexp"
	"testing"
	"time"

	"railticket/internal/database"
	"railticket/internal/domain"
	"railticket/internal/modules/catalog"
	"railticket/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrain() *domain.Train {
	return &domain.Train{
		Code:     "G101",
		Origin:   "北京",
		Dest:     "上海",
		Depart:   "08:00",
		Arrive:   "12:30",
		Duration: "4h30m",
		Seats: map[domain.SeatClass]int{
			domain.SeatBusiness: 4,
			domain.SeatFirst:    12,
			domain.SeatSecond:   60,
			domain.SeatNone:     0,
		},
		Prices: map[domain.SeatClass]float64{
			domain.SeatBusiness: 960,
			domain.SeatFirst:    480,
			domain.SeatSecond:   320,
		},
	}
}

func setupService(t *testing.T) (*Service, *catalog.Service) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}))

	cat := catalog.NewService([]*domain.Train{newTestTrain()})
	svc := NewService(repository.NewOrderRepository(db), cat, nil, 5*time.Millisecond)
	return svc, cat
}

func createOrder(t *testing.T, svc *Service, passengers int) *domain.Order {
	t.Helper()
	ps := make([]domain.TicketPassenger, passengers)
	for i := range ps {
		ps[i] = domain.TicketPassenger{Name: "张三", IDType: domain.IDResident, IDNo: "110101199001011234"}
	}
	o, err := svc.Create(context.Background(), CreateOrderRequest{
		Origin:     "北京",
		Dest:       "上海",
		Date:       "2026-09-01",
		TrainCode:  "G101",
		SeatClass:  domain.SeatSecond,
		Price:      320,
		Passengers: ps,
	})
	require.NoError(t, err)
	return o
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", clock, time.Local)
	require.NoError(t, err)
	return ts
}

func TestCreate_DecrementsInventory(t *testing.T) {
	svc, cat := setupService(t)

	o := createOrder(t, svc, 2)
	assert.Equal(t, domain.OrderPending, o.Status)
	assert.NotEmpty(t, o.ID)

	tr, ok := cat.Get("G101")
	require.True(t, ok)
	assert.Equal(t, 58, tr.Seats[domain.SeatSecond])
}

func TestCreate_RejectsEmptyPassengers(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateOrderRequest{
		Origin: "北京", Dest: "上海", Date: "2026-09-01",
		TrainCode: "G101", SeatClass: domain.SeatSecond,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPay_AssignsSeat(t *testing.T) {
	svc, _ := setupService(t)
	o := createOrder(t, svc, 1)

	paid, err := svc.Pay(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, paid.Status)
	assert.GreaterOrEqual(t, paid.Item.Carriage, 1)
	assert.LessOrEqual(t, paid.Item.Carriage, 16)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}[ABCDF]$`), paid.Item.SeatNo)

	// paying twice is a state error
	_, err = svc.Pay(context.Background(), o.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestPay_UnknownOrder(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.Pay(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancel_PendingOnly(t *testing.T) {
	svc, _ := setupService(t)
	o := createOrder(t, svc, 1)

	cancelled, err := svc.Cancel(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, cancelled.Status)

	paid := createOrder(t, svc, 1)
	_, err = svc.Pay(context.Background(), paid.ID)
	require.NoError(t, err)
	_, err = svc.Cancel(context.Background(), paid.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRefund_WindowBoundary(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	o := createOrder(t, svc, 1)
	_, err := svc.Pay(ctx, o.ID)
	require.NoError(t, err)

	// 59 minutes before the 08:00 departure: too late
	svc.now = func() time.Time { return at(t, "2026-09-01 07:01") }
	_, err = svc.Refund(ctx, o.ID)
	assert.ErrorIs(t, err, ErrRefundWindowClosed)

	got, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, got.Status, "failed refund must not change status")

	// 61 minutes before departure: accepted
	svc.now = func() time.Time { return at(t, "2026-09-01 06:59") }
	refunding, err := svc.Refund(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderRefunding, refunding.Status)
}

func TestRefund_CompletesAndRestoresInventory(t *testing.T) {
	svc, cat := setupService(t)
	ctx := context.Background()

	o := createOrder(t, svc, 2)
	_, err := svc.Pay(ctx, o.ID)
	require.NoError(t, err)

	svc.now = func() time.Time { return at(t, "2026-09-01 05:00") }
	_, err = svc.Refund(ctx, o.ID)
	require.NoError(t, err)

	// the simulated processing delay is 5ms in tests
	require.Eventually(t, func() bool {
		got, err := svc.Get(ctx, o.ID)
		return err == nil && got.Status == domain.OrderCancelled
	}, time.Second, 10*time.Millisecond)

	tr, _ := cat.Get("G101")
	assert.Equal(t, 60, tr.Seats[domain.SeatSecond], "refund must restore the booked seats")
}

func TestRefund_RequiresPaid(t *testing.T) {
	svc, _ := setupService(t)
	o := createOrder(t, svc, 1)

	_, err := svc.Refund(context.Background(), o.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReschedule_SingleUse(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	o := createOrder(t, svc, 1)

	svc.now = func() time.Time { return at(t, "2026-08-25 10:00") }

	res, err := svc.RescheduleDate(ctx, o.ID, "2026-09-03")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-03", res.Date)
	assert.Equal(t, 1, res.RescheduleCount)

	_, err = svc.RescheduleDate(ctx, o.ID, "2026-09-05")
	assert.ErrorIs(t, err, ErrRescheduleUsed)
}

func TestReschedule_BlockedAfterDestinationChange(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	o := createOrder(t, svc, 1)

	svc.now = func() time.Time { return at(t, "2026-08-25 10:00") }

	_, err := svc.ChangeDestination(ctx, o.ID, "杭州")
	require.NoError(t, err)

	_, err = svc.RescheduleDate(ctx, o.ID, "2026-09-03")
	assert.ErrorIs(t, err, ErrRescheduleBlocked)
}

func TestReschedule_RejectsPastDate(t *testing.T) {
	svc, _ := setupService(t)
	o := createOrder(t, svc, 1)

	svc.now = func() time.Time { return at(t, "2026-08-25 10:00") }

	_, err := svc.RescheduleDate(context.Background(), o.ID, "2026-08-20")
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestReschedule_Inside48HoursCannotMoveLater(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	o := createOrder(t, svc, 1)

	// 22 hours before the 2026-09-01 08:00 departure
	svc.now = func() time.Time { return at(t, "2026-08-31 10:00") }

	_, err := svc.RescheduleDate(ctx, o.ID, "2026-09-02")
	assert.ErrorIs(t, err, ErrRescheduleWindow)

	// the same date is still allowed
	res, err := svc.RescheduleDate(ctx, o.ID, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 1, res.RescheduleCount)
}

func TestReschedule_AfterDepartureSameDayOnly(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	o := createOrder(t, svc, 1)

	// departed an hour ago
	svc.now = func() time.Time { return at(t, "2026-09-01 09:00") }

	_, err := svc.RescheduleDate(ctx, o.ID, "2026-09-02")
	assert.ErrorIs(t, err, ErrRescheduleWindow)

	res, err := svc.RescheduleDate(ctx, o.ID, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", res.Date)
}

func TestChangeDestination(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	o := createOrder(t, svc, 1)

	svc.now = func() time.Time { return at(t, "2026-08-25 10:00") }

	// same destination is a no-op
	same, err := svc.ChangeDestination(ctx, o.ID, "上海")
	require.NoError(t, err)
	assert.Equal(t, 0, same.ChangeDestCount)

	changed, err := svc.ChangeDestination(ctx, o.ID, "杭州")
	require.NoError(t, err)
	assert.Equal(t, "杭州", changed.Dest)
	assert.Equal(t, 1, changed.ChangeDestCount)

	// repeated changes are counted, not capped
	again, err := svc.ChangeDestination(ctx, o.ID, "南京")
	require.NoError(t, err)
	assert.Equal(t, 2, again.ChangeDestCount)
}

func TestChangeDestination_PaidAndDeparted(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	o := createOrder(t, svc, 1)
	_, err := svc.Pay(ctx, o.ID)
	require.NoError(t, err)

	svc.now = func() time.Time { return at(t, "2026-09-01 09:00") }

	_, err = svc.ChangeDestination(ctx, o.ID, "杭州")
	assert.ErrorIs(t, err, ErrAlreadyDeparted)
}

func TestList_NewestFirst(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	first := createOrder(t, svc, 1)
	time.Sleep(5 * time.Millisecond)
	second := createOrder(t, svc, 1)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
