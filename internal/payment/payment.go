// Package payment turns bookings into checkouts. Implementations are
// chosen by configuration.
package payment

import (
	"context"
	"eventManager/internal/config"
	"log/slog"

	"github.com/shopspring/decimal"
)

type Provider string

const (
	ProviderMock   Provider = "mock"
	ProviderStripe Provider = "stripe"
)

type CheckoutRequest struct {
	BookingID   string
	EventID     string
	TicketID    string
	EventName   string
	TicketType  string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
}

type Checkout struct {
	TransactionID string
	URL           string
	Mock          bool
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error)
}

// New builds the gateway for the configured provider. Stripe is always backed
// by the mock gateway so a payment outage never blocks bookings.
func New(log *slog.Logger, cfg config.Payment, clientURL string) Gateway {
	mock := NewMock()

	if Provider(cfg.Provider) != ProviderStripe {
		return mock
	}

	if cfg.StripeSecretKey == "" {
		log.Warn("stripe secret key is not set, using mock payments")
		return mock
	}

	return NewFallback(log, NewStripe(cfg.StripeSecretKey, clientURL, cfg.Currency), mock)
}
