package storage

import "errors"

var (
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrEventHasBookings     = errors.New("event has completed bookings")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrTicketsSoldOut       = errors.New("not enough tickets left")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingNotPayable    = errors.New("booking cannot be completed")
	ErrBookingNotCompleted  = errors.New("booking is not paid")
	ErrCapacityBelowSold    = errors.New("quantity available is below quantity sold")
	ErrNotificationNotFound = errors.New("notification not found")
)
