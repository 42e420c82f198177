package domain

import "time"

// Passenger is a saved traveller profile in an account's directory. Each
// owner has exactly one self entry kept in sync with the User record.
type Passenger struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Owner       string      `json:"owner" gorm:"index"`
	IsSelf      bool        `json:"isSelf"`
	Name        string      `json:"name"`
	IDType      IDType      `json:"idType"`
	IDNo        string      `json:"idNo"`
	PhoneCode   string      `json:"phoneCode"`
	PhoneNumber string      `json:"phoneNumber"`
	Benefit     BenefitType `json:"benefit"`
	Verified    bool        `json:"verified"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
