package payment

import (
	"context"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/lib/metrics"
	"log/slog"
)

type Fallback struct {
	log       *slog.Logger
	primary   Gateway
	secondary Gateway
}

func NewFallback(log *slog.Logger, primary, secondary Gateway) *Fallback {
	return &Fallback{
		log:       log,
		primary:   primary,
		secondary: secondary,
	}
}

func (f *Fallback) CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error) {
	const op = "payment.Fallback.CreateCheckout"

	checkout, err := f.primary.CreateCheckout(ctx, req)
	if err == nil {
		return checkout, nil
	}

	f.log.Warn("primary payment gateway failed, using fallback",
		slog.String("op", op),
		slog.String("booking_id", req.BookingID),
		sl.Err(err),
	)
	metrics.PaymentFallbacks.Inc()

	return f.secondary.CreateCheckout(ctx, req)
}
