package domain

import "time"

// ResetCode is a pending password-reset verification code. One code per
// account; re-requesting overwrites the previous one.
type ResetCode struct {
	Account   string    `json:"account" gorm:"primaryKey"`
	Code      string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type QrStatus string

const (
	QrPending   QrStatus = "pending"
	QrScanned   QrStatus = "scanned"
	QrConfirmed QrStatus = "confirmed"
	QrExpired   QrStatus = "expired"
)

// QrSession is a scan-to-login handshake. Expiry is derived from
// CreatedAt at read time rather than stored.
type QrSession struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Status    QrStatus  `json:"status"`
	Account   string    `json:"account,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
