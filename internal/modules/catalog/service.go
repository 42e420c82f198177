package catalog

import (
	"fmt"
	"math"
	"sync"
	"time"

	"railticket/internal/domain"
)

// PopularCities is the fixed city set the schedule is generated over.
var PopularCities = []string{
	"北京", "上海", "广州", "深圳", "杭州",
	"南京", "武汉", "成都", "西安", "重庆",
}

// Service owns the in-memory train schedule. Inventory is process-lifetime
// mutable state; the lock serialises booking and refund mutations against
// search reads.
type Service struct {
	mu     sync.RWMutex
	trains []*domain.Train
	byCode map[string]*domain.Train
}

func NewService(trains []*domain.Train) *Service {
	byCode := make(map[string]*domain.Train, len(trains))
	for _, t := range trains {
		byCode[t.Code] = t
	}
	return &Service{trains: trains, byCode: byCode}
}

// NewGenerated builds the full demo schedule over PopularCities.
func NewGenerated() *Service {
	return NewService(GenerateTrains(PopularCities))
}

// GenerateTrains produces one high-speed (G) and one EMU (D) service for
// every ordered city pair. Codes share a single sequence starting at 100.
// Seat counts and prices are keyed off the carrier prefix.
func GenerateTrains(cities []string) []*domain.Train {
	var out []*domain.Train
	seq := 100
	for i, a := range cities {
		for j, b := range cities {
			if i == j {
				continue
			}
			out = append(out, genTrain('G', seq, a, b, 7+((i+j)%8)))
			seq++
			out = append(out, genTrain('D', seq, a, b, 9+((i+j)%8)))
			seq++
		}
	}
	return out
}

func genTrain(prefix rune, seq int, origin, dest string, departHour int) *domain.Train {
	var departMinute, rideMinutes int
	var duration string
	var seats map[domain.SeatClass]int
	var prices map[domain.SeatClass]float64

	if prefix == 'G' {
		departMinute, rideMinutes, duration = 0, 270, "4h30m"
		seats = map[domain.SeatClass]int{
			domain.SeatBusiness: 4,
			domain.SeatFirst:    12,
			domain.SeatSecond:   60,
			domain.SeatNone:     0,
		}
		prices = map[domain.SeatClass]float64{
			domain.SeatBusiness: 960,
			domain.SeatFirst:    480,
			domain.SeatSecond:   320,
		}
	} else {
		departMinute, rideMinutes, duration = 15, 390, "6h30m"
		seats = map[domain.SeatClass]int{
			domain.SeatSecond: 50,
			domain.SeatNone:   8,
		}
		prices = map[domain.SeatClass]float64{
			domain.SeatSecond: 280,
		}
	}

	depart := fmt.Sprintf("%02d:%02d", departHour, departMinute)
	return &domain.Train{
		Code:     fmt.Sprintf("%c%d", prefix, seq),
		Origin:   origin,
		Dest:     dest,
		Depart:   depart,
		Arrive:   addMinutes(depart, rideMinutes),
		Duration: duration,
		Seats:    seats,
		Prices:   prices,
	}
}

// addMinutes shifts an HH:mm clock time, appending "+1" when the result
// rolls into the next day.
func addMinutes(clock string, mins int) string {
	var h, m int
	fmt.Sscanf(clock, "%d:%d", &h, &m)
	total := h*60 + m + mins
	suffix := ""
	if total >= 24*60 {
		suffix = "+1"
	}
	return fmt.Sprintf("%02d:%02d%s", (total/60)%24, total%60, suffix)
}

// Search returns the candidate trains for a route. The travel date does
// not vary results: every date sees the same schedule. highSpeedOnly
// restricts to G/D carrier codes.
func (s *Service) Search(origin, dest string, highSpeedOnly bool) []domain.Train {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Train, 0)
	for _, t := range s.trains {
		if origin != "" && t.Origin != origin {
			continue
		}
		if dest != "" && t.Dest != dest {
			continue
		}
		if highSpeedOnly && t.Code[0] != 'G' && t.Code[0] != 'D' {
			continue
		}
		out = append(out, snapshot(t))
	}
	return out
}

// Get returns a copy of one train, or false for an unknown code.
func (s *Service) Get(code string) (domain.Train, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byCode[code]
	if !ok {
		return domain.Train{}, false
	}
	return snapshot(t), true
}

// DecrementInventory books count seats of a class, clamping at zero.
// Unknown train codes are a no-op returning 0.
func (s *Service) DecrementInventory(code string, class domain.SeatClass, count int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byCode[code]
	if !ok {
		return 0
	}
	next := t.Seats[class] - count
	if next < 0 {
		next = 0
	}
	t.Seats[class] = next
	return next
}

// RestoreInventory returns count seats of a class after a refund. The add
// is unclamped; unknown train codes are a no-op returning 0.
func (s *Service) RestoreInventory(code string, class domain.SeatClass, count int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byCode[code]
	if !ok {
		return 0
	}
	t.Seats[class] += count
	return t.Seats[class]
}

// CheapestSeat picks the booking class for a train: lowest listed price
// among classes with remaining inventory, falling back to no-seat at its
// listed (or zero) price when everything is sold out.
func CheapestSeat(t domain.Train) (domain.SeatClass, float64) {
	best := domain.SeatClass("")
	bestPrice := math.Inf(1)
	for _, class := range domain.AllSeatClasses {
		if t.Seats[class] <= 0 {
			continue
		}
		price, listed := t.Prices[class]
		if !listed {
			price = math.Inf(1)
		}
		if price < bestPrice {
			best = class
			bestPrice = price
		}
	}
	if best == "" {
		return domain.SeatNone, t.Prices[domain.SeatNone]
	}
	if math.IsInf(bestPrice, 1) {
		bestPrice = 0
	}
	return best, bestPrice
}

// DepartureTime combines a travel date with the train's HH:mm departure,
// honoring the "+1" next-day marker.
func DepartureTime(t domain.Train, date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	clock := t.Depart
	nextDay := false
	if len(clock) > 2 && clock[len(clock)-2:] == "+1" {
		clock = clock[:len(clock)-2]
		nextDay = true
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	dep := time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, time.Local)
	if nextDay {
		dep = dep.AddDate(0, 0, 1)
	}
	return dep, nil
}

func snapshot(t *domain.Train) domain.Train {
	out := *t
	out.Seats = make(map[domain.SeatClass]int, len(t.Seats))
	for k, v := range t.Seats {
		out.Seats[k] = v
	}
	out.Prices = make(map[domain.SeatClass]float64, len(t.Prices))
	for k, v := range t.Prices {
		out.Prices[k] = v
	}
	return out
}
