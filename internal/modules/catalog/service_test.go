package catalog

import (
	"testing"
	"time"

	"railticket/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrain(code string) *domain.Train {
	return &domain.Train{
		Code:     code,
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

func TestGenerateTrains_CoversAllCityPairs(t *testing.T) {
	cities := []string{"北京", "上海", "广州"}
	trains := GenerateTrains(cities)

	// one G and one D per ordered pair
	assert.Len(t, trains, 2*len(cities)*(len(cities)-1))

	codes := map[string]bool{}
	for _, tr := range trains {
		assert.False(t, codes[tr.Code], "duplicate code %s", tr.Code)
		codes[tr.Code] = true
		assert.NotEqual(t, tr.Origin, tr.Dest)
		switch tr.Code[0] {
		case 'G':
			assert.Equal(t, 60, tr.Seats[domain.SeatSecond])
			assert.Equal(t, 320.0, tr.Prices[domain.SeatSecond])
			assert.Equal(t, "4h30m", tr.Duration)
		case 'D':
			assert.Equal(t, 50, tr.Seats[domain.SeatSecond])
			assert.Equal(t, 8, tr.Seats[domain.SeatNone])
			assert.Equal(t, "6h30m", tr.Duration)
		default:
			t.Fatalf("unexpected carrier prefix in %s", tr.Code)
		}
	}
}

func TestSearch_FiltersByRoute(t *testing.T) {
	svc := NewGenerated()

	got := svc.Search("北京", "上海", false)
	require.NotEmpty(t, got)
	for _, tr := range got {
		assert.Equal(t, "北京", tr.Origin)
		assert.Equal(t, "上海", tr.Dest)
	}

	assert.Empty(t, svc.Search("北京", "不存在的城市", false))
}

func TestDecrementInventory_ClampsAtZero(t *testing.T) {
	svc := NewService([]*domain.Train{testTrain("G101")})

	assert.Equal(t, 2, svc.DecrementInventory("G101", domain.SeatBusiness, 2))
	// over-decrement clamps instead of going negative
	assert.Equal(t, 0, svc.DecrementInventory("G101", domain.SeatBusiness, 99))
	assert.Equal(t, 0, svc.DecrementInventory("G101", domain.SeatBusiness, 1))

	// unknown train is a silent no-op
	assert.Equal(t, 0, svc.DecrementInventory("Z9999", domain.SeatSecond, 1))
}

func TestRestoreInventory_RoundTrip(t *testing.T) {
	svc := NewService([]*domain.Train{testTrain("G101")})

	svc.RestoreInventory("G101", domain.SeatSecond, 3)
	got := svc.DecrementInventory("G101", domain.SeatSecond, 3)
	assert.Equal(t, 60, got)

	assert.Equal(t, 0, svc.RestoreInventory("Z9999", domain.SeatSecond, 1))
}

func TestBooking_ReducesSecondClassInventory(t *testing.T) {
	svc := NewService([]*domain.Train{testTrain("G101")})

	remaining := svc.DecrementInventory("G101", domain.SeatSecond, 2)
	assert.Equal(t, 58, remaining)

	tr, ok := svc.Get("G101")
	require.True(t, ok)
	assert.Equal(t, 58, tr.Seats[domain.SeatSecond])
}

func TestCheapestSeat(t *testing.T) {
	tr := *testTrain("G101")
	class, price := CheapestSeat(tr)
	assert.Equal(t, domain.SeatSecond, class)
	assert.Equal(t, 320.0, price)

	// second class sold out: next cheapest with inventory wins
	tr.Seats[domain.SeatSecond] = 0
	class, price = CheapestSeat(tr)
	assert.Equal(t, domain.SeatFirst, class)
	assert.Equal(t, 480.0, price)

	// everything sold out: fall back to no-seat at listed-or-zero price
	tr.Seats[domain.SeatFirst] = 0
	tr.Seats[domain.SeatBusiness] = 0
	class, price = CheapestSeat(tr)
	assert.Equal(t, domain.SeatNone, class)
	assert.Equal(t, 0.0, price)
}

func TestDepartureTime(t *testing.T) {
	tr := *testTrain("G101")
	dep, err := DepartureTime(tr, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local), dep)

	tr.Depart = "23:45+1"
	dep, err = DepartureTime(tr, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 2, 23, 45, 0, 0, time.Local), dep)

	_, err = DepartureTime(*testTrain("G101"), "not-a-date")
	assert.Error(t, err)
}

func TestSearch_ReturnsSnapshots(t *testing.T) {
	svc := NewService([]*domain.Train{testTrain("G101")})

	got := svc.Search("北京", "上海", false)
	require.Len(t, got, 1)
	got[0].Seats[domain.SeatSecond] = 1

	tr, _ := svc.Get("G101")
	assert.Equal(t, 60, tr.Seats[domain.SeatSecond], "mutating a search result must not touch inventory")
}
