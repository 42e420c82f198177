package domain

import "time"

// IDType is an identity document category. Values are the user-facing
// Chinese labels, stored verbatim.
type IDType string

const (
	IDResident        IDType = "居民身份证"
	IDHKMacauResident IDType = "港澳居民居住证"
	IDTaiwanResident  IDType = "台湾居民居住证"
	IDForeignPermRes  IDType = "外国人永久居留身份证"
	IDForeignPassport IDType = "外国护照"
	IDChinesePassport IDType = "中国护照"
	IDHKMacauPermit   IDType = "港澳居民来往内地通行证"
	IDTaiwanPermit    IDType = "台湾居民来往大陆通行证"
)

// BenefitType is the fare discount category attached to an account or a
// saved traveller.
type BenefitType string

const (
	BenefitAdult    BenefitType = "成人"
	BenefitChild    BenefitType = "儿童"
	BenefitStudent  BenefitType = "学生"
	BenefitDisabled BenefitType = "残疾军人"
)

type User struct {
	ID           int64       `json:"id" gorm:"primaryKey"`
	Username     string      `json:"username" gorm:"uniqueIndex"`
	PasswordHash string      `json:"-"`
	Email        string      `json:"email,omitempty"`
	PhoneCode    string      `json:"phoneCode"` // +86 / +852 / +853 / +886
	PhoneNumber  string      `json:"phoneNumber"`
	IDType       IDType      `json:"idType"`
	IDNo         string      `json:"idNo"`
	FullName     string      `json:"fullName"`
	Benefit      BenefitType `json:"benefit"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Session is the single process-wide "current user" pointer. Exactly one
// row (ID 1) exists at a time.
type Session struct {
	ID        int64     `json:"-" gorm:"primaryKey"`
	Username  string    `json:"username"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const SessionRowID int64 = 1
