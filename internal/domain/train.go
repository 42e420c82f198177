package domain

// SeatClass is a fare category. The short codes are the wire format used
// by search and booking: sw = business, ydz = first, edz = second,
// wz = standing (no seat).
type SeatClass string

const (
	SeatBusiness SeatClass = "sw"
	SeatFirst    SeatClass = "ydz"
	SeatSecond   SeatClass = "edz"
	SeatNone     SeatClass = "wz"
)

// AllSeatClasses in display order, business first.
var AllSeatClasses = []SeatClass{SeatBusiness, SeatFirst, SeatSecond, SeatNone}

// Train is one scheduled service between two cities. The schedule is
// generated in memory at process start and inventory is mutated in place
// by booking and refund operations; trains are never persisted.
type Train struct {
	Code     string                `json:"code"`
	Origin   string                `json:"origin"`
	Dest     string                `json:"dest"`
	Depart   string                `json:"depart"` // HH:mm, "+1" suffix when departing next day
	Arrive   string                `json:"arrive"`
	Duration string                `json:"duration"`
	Seats    map[SeatClass]int     `json:"types"` // remaining tickets per class
	Prices   map[SeatClass]float64 `json:"price"` // absent class is not sold on this train
}
