package standby

import "railticket/internal/domain"

type CreateStandbyRequest struct {
	Origin          string                   `json:"origin" binding:"required" validate:"required"`
	Dest            string                   `json:"dest" binding:"required" validate:"required"`
	Date            string                   `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	TrainCode       string                   `json:"trainCode" binding:"required" validate:"required"`
	Passengers      []domain.TicketPassenger `json:"passengers" binding:"required" validate:"required,min=1"`
	SeatPrefs       []domain.SeatClass       `json:"seatPrefs" binding:"required" validate:"required,min=1,dive,oneof=sw ydz edz wz"`
	DeadlineMinutes int                      `json:"deadlineMinutes" binding:"required" validate:"gte=1,lte=1440"`
	Priority        domain.StandbyPriority   `json:"priority" validate:"omitempty,oneof=time price"`
	Deposit         float64                  `json:"deposit" validate:"gte=0"`
}
