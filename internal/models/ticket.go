package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID                string          `json:"id"`
	EventID           string          `json:"event_id"`
	TicketType        string          `json:"ticket_type"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantity_available"`
	QuantitySold      int             `json:"quantity_sold"`
	Description       string          `json:"description,omitempty"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (t Ticket) Remaining() int {
	if t.QuantitySold >= t.QuantityAvailable {
		return 0
	}
	return t.QuantityAvailable - t.QuantitySold
}

func (t Ticket) IsSoldOut() bool {
	return t.QuantitySold >= t.QuantityAvailable
}

type TicketUpdate struct {
	TicketType        *string
	Price             *decimal.Decimal
	QuantityAvailable *int
	Description       *string
	IsActive          *bool
}

// TicketView is the public shape of a ticket with its derived fields.
type TicketView struct {
	Ticket
	RemainingQuantity int  `json:"remaining_quantity"`
	IsSoldOut         bool `json:"is_sold_out"`
}

func (t Ticket) View() TicketView {
	return TicketView{
		Ticket:            t,
		RemainingQuantity: t.Remaining(),
		IsSoldOut:         t.IsSoldOut(),
	}
}
