// Package stripeWebhook completes bookings paid through Stripe Checkout.
package stripeWebhook

import (
	"context"
	"errors"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/payment"
	"eventManager/internal/storage"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"io"
	"log/slog"
	"net/http"
)

const maxPayload = 64 << 10

type Response struct {
	response.Response
	Received bool `json:"received"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebhookParser
type WebhookParser interface {
	Parse(payload []byte, signature string) (payment.CheckoutCompleted, bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckoutCompleter
type CheckoutCompleter interface {
	CompleteCheckout(ctx context.Context, bookingID, paymentIntentID string) (models.Booking, bool, error)
}

func New(log *slog.Logger, parser WebhookParser, completer CheckoutCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.stripeWebhook.New"

		log := log.With(slog.String("op", op))

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayload))
		if err != nil {
			log.Error("failed to read webhook payload", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read request"))
			return
		}

		checkout, ok, err := parser.Parse(payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			if errors.Is(err, payment.ErrWebhookNotConfigured) {
				log.Warn("webhook received but no secret is configured")
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("webhook is not configured"))
				return
			}

			log.Warn("rejected webhook", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid webhook signature"))
			return
		}

		if !ok {
			responseOK(w, r)
			return
		}

		log = log.With(slog.String("booking_id", checkout.BookingID), slog.String("session_id", checkout.SessionID))

		// Sessions created outside this service carry no booking id.
		if _, err := uuid.Parse(checkout.BookingID); err != nil {
			log.Warn("checkout session has no usable booking id")
			responseOK(w, r)
			return
		}

		_, changed, err := completer.CompleteCheckout(r.Context(), checkout.BookingID, checkout.PaymentIntentID)
		switch {
		case err == nil:
			log.Info("checkout completed", slog.Bool("changed", changed))
		case errors.Is(err, storage.ErrBookingNotFound),
			errors.Is(err, storage.ErrBookingNotPayable),
			errors.Is(err, storage.ErrTicketsSoldOut):
			// Stripe retries anything but a 2xx, and none of these can succeed later.
			log.Error("checkout could not be applied", sl.Err(err))
		default:
			log.Error("failed to complete checkout", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to process webhook", err))
			return
		}

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Received: true,
	})
}
