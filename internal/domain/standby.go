package domain

import "time"

type StandbyStatus string

const (
	StandbySubmitted StandbyStatus = "submitted"
	StandbyMatching  StandbyStatus = "matching"
	StandbySuccess   StandbyStatus = "success"
	StandbyExpired   StandbyStatus = "expired"
	StandbyCancelled StandbyStatus = "cancelled"
)

type StandbyPriority string

const (
	PriorityTime  StandbyPriority = "time"
	PriorityPrice StandbyPriority = "price"
)

// StandbyRequest is a waitlist application. Matching is simulated: the
// request succeeds or expires purely by clock comparison against the two
// target timestamps, whichever is observed first when the record is polled.
type StandbyRequest struct {
	ID              string            `json:"id" gorm:"primaryKey"`
	Origin          string            `json:"origin"`
	Dest            string            `json:"dest"`
	Date            string            `json:"date"` // YYYY-MM-DD
	TrainCode       string            `json:"trainCode"`
	Passengers      []TicketPassenger `json:"passengers" gorm:"serializer:json"`
	SeatPrefs       []SeatClass       `json:"seatPrefs" gorm:"serializer:json"`
	DeadlineMinutes int               `json:"deadlineMinutes"`
	Priority        StandbyPriority   `json:"priority"` // stored, not used to alter matching order
	Deposit         float64           `json:"deposit"`
	Status          StandbyStatus     `json:"status" gorm:"index"`
	SuccessTarget   time.Time         `json:"successTarget"`
	ExpireAt        time.Time         `json:"expireAt"`
	MatchedSeat     SeatClass         `json:"matchedSeatType,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
