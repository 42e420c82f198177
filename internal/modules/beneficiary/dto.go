package beneficiary

import "railticket/internal/domain"

type AddBeneficiaryRequest struct {
	Name          string        `json:"name" binding:"required"`
	IDType        domain.IDType `json:"idType" binding:"required"`
	IDNo          string        `json:"idNo" binding:"required"`
	Gender        string        `json:"gender"`
	BirthDate     string        `json:"birthDate"`
	PhoneCode     string        `json:"phoneCode"`
	PhoneNumber   string        `json:"phoneNumber"`
	Email         string        `json:"email"`
	EffectiveDate string        `json:"effectiveDate"`
}

// UpdateBeneficiaryRequest is a patch limited to contact details.
type UpdateBeneficiaryRequest struct {
	PhoneCode   string `json:"phoneCode"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type FromPassengersRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
