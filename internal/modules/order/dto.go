package order

import "railticket/internal/domain"

// CreateOrderRequest is the fully-formed booking the UI submits: the
// caller has already chosen the seat class and resolved the fare.
type CreateOrderRequest struct {
	Origin     string                   `json:"origin" binding:"required" validate:"required"`
	Dest       string                   `json:"dest" binding:"required" validate:"required"`
	Date       string                   `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	TrainCode  string                   `json:"trainCode" binding:"required" validate:"required"`
	SeatClass  domain.SeatClass         `json:"seatType" binding:"required" validate:"required,oneof=sw ydz edz wz"`
	Price      float64                  `json:"price" validate:"gte=0"`
	Passengers []domain.TicketPassenger `json:"passengers" binding:"required" validate:"required,min=1"`

	// GroupID links round-trip or connecting legs booked together; leave
	// empty for a single journey.
	GroupID string `json:"groupId"`
}

type ChangeDestinationRequest struct {
	Dest string `json:"dest" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
}
