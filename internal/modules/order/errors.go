package order

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("order status does not permit this operation")

	// ErrRefundWindowClosed: refunds close 60 minutes before departure.
	ErrRefundWindowClosed = errors.New("refund window closed")

	ErrDateInPast        = errors.New("new travel date is in the past")
	ErrRescheduleUsed    = errors.New("order has already been rescheduled")
	ErrRescheduleBlocked = errors.New("reschedule not allowed after destination change")
	ErrRescheduleWindow  = errors.New("reschedule timing rules not met")
	ErrAlreadyDeparted   = errors.New("train has already departed")
)
