package passenger

import "railticket/internal/domain"

type AddPassengerRequest struct {
	Name        string             `json:"name" binding:"required"`
	IDType      domain.IDType      `json:"idType" binding:"required"`
	IDNo        string             `json:"idNo" binding:"required"`
	PhoneCode   string             `json:"phoneCode"`
	PhoneNumber string             `json:"phoneNumber"`
	Benefit     domain.BenefitType `json:"benefit"`
}

// UpdatePassengerRequest is a patch: only the phone and fare benefit are
// editable, identity fields are not.
type UpdatePassengerRequest struct {
	PhoneCode   string             `json:"phoneCode"`
	PhoneNumber string             `json:"phoneNumber"`
	Benefit     domain.BenefitType `json:"benefit"`
}

type DeletePassengersRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
