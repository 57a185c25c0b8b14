package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type CheckInStatus string

const (
	NotCheckedIn CheckInStatus = "not_checked_in"
	CheckedIn    CheckInStatus = "checked_in"
)

type Booking struct {
	ID            string          `json:"id"`
	AttendeeID    string          `json:"attendee_id"`
	EventID       string          `json:"event_id"`
	TicketID      string          `json:"ticket_id"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BookingDate   time.Time       `json:"booking_date"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CheckInStatus CheckInStatus   `json:"check_in_status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BookingDetails is a booking joined with what the attendee needs to see.
type BookingDetails struct {
	Booking
	Event  BookingEvent  `json:"event"`
	Ticket BookingTicket `json:"ticket"`
}

type BookingEvent struct {
	ID        string      `json:"id"`
	EventName string      `json:"event_name"`
	EventDate time.Time   `json:"event_date"`
	EventTime string      `json:"event_time"`
	Venue     string      `json:"venue"`
	Status    EventStatus `json:"status"`
}

type BookingTicket struct {
	ID         string          `json:"id"`
	TicketType string          `json:"ticket_type"`
	Price      decimal.Decimal `json:"price"`
}

type BookingFilter struct {
	Status   PaymentStatus
	Upcoming *bool
	Now      time.Time
}

type Attendee struct {
	BookingID     string          `json:"booking_id"`
	TicketType    string          `json:"ticket_type"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CheckInStatus CheckInStatus   `json:"check_in_status"`
	BookingDate   time.Time       `json:"booking_date"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
}
