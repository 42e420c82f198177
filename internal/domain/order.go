package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunding OrderStatus = "refunding"
)

// TicketPassenger is the traveller snapshot frozen into an order at
// booking time. It is intentionally not linked back to the saved
// passenger directory.
type TicketPassenger struct {
	Name    string `json:"name"`
	IDType  IDType `json:"idType"`
	IDNo    string `json:"idNo"`
	Student bool   `json:"student,omitempty"`
}

// OrderItem is the single ticket line of an order. Carriage and seat are
// assigned at payment time.
type OrderItem struct {
	TrainCode string    `json:"trainCode"`
	SeatClass SeatClass `json:"seatType"`
	Carriage  int       `json:"carriage,omitempty"`
	SeatNo    string    `json:"seatNo,omitempty"`
	Price     float64   `json:"price"`
}

type Order struct {
	ID         string            `json:"id" gorm:"primaryKey"`
	Origin     string            `json:"origin"`
	Dest       string            `json:"dest"`
	Date       string            `json:"date"` // YYYY-MM-DD travel date, no time component
	Passengers []TicketPassenger `json:"passengers" gorm:"serializer:json"`
	Item       OrderItem         `json:"item" gorm:"serializer:json"`
	Status     OrderStatus       `json:"status" gorm:"index"`

	// GroupID links the two orders of a round trip or connecting journey.
	GroupID string `json:"groupId,omitempty" gorm:"index"`

	// One reschedule per ticket; any destination change blocks reschedule
	// permanently.
	RescheduleCount int `json:"rescheduleCount"`
	ChangeDestCount int `json:"changeDestCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
