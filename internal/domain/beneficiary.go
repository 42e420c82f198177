package domain

import "time"

// Beneficiary is a saved identity to whom loyalty-point-funded tickets may
// be issued on the account holder's behalf. Capped at 8 per owner,
// including the self entry.
type Beneficiary struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Owner         string    `json:"owner" gorm:"index"`
	Name          string    `json:"name"`
	IDType        IDType    `json:"idType"`
	IDNo          string    `json:"idNo"`
	Gender        string    `json:"gender,omitempty"` // 男 / 女
	BirthDate     string    `json:"birthDate,omitempty"`
	PhoneCode     string    `json:"phoneCode,omitempty"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"`
	Email         string    `json:"email,omitempty"`
	EffectiveDate string    `json:"effectiveDate,omitempty"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

const BeneficiaryLimit = 8
