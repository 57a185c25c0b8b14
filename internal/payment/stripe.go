package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const eventCheckoutCompleted = "checkout.session.completed"

type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Stripe struct {
	sessions  sessionCreator
	clientURL string
	currency  string
}

func NewStripe(secretKey, clientURL, currency string) *Stripe {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &Stripe{
		sessions:  sc.CheckoutSessions,
		clientURL: clientURL,
		currency:  currency,
	}
}

func (s *Stripe) CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error) {
	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(fmt.Sprintf("%s - %s", req.EventName, req.TicketType)),
	}
	if req.Description != "" {
		product.Description = stripe.String(req.Description)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(s.currency),
					UnitAmount:  stripe.Int64(minorUnits(req.UnitPrice)),
					ProductData: product,
				},
				Quantity: stripe.Int64(int64(req.Quantity)),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/booking/success?session_id={CHECKOUT_SESSION_ID}&booking_id=%s",
			s.clientURL, req.BookingID)),
		CancelURL: stripe.String(fmt.Sprintf("%s/booking/cancel?booking_id=%s", s.clientURL, req.BookingID)),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("eventId", req.EventID)
	params.AddMetadata("ticketId", req.TicketID)
	params.AddMetadata("quantity", fmt.Sprint(req.Quantity))

	sess, err := s.sessions.New(params)
	if err != nil {
		return Checkout{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return Checkout{
		TransactionID: sess.ID,
		URL:           sess.URL,
	}, nil
}

func minorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}

var ErrWebhookNotConfigured = errors.New("stripe webhook secret is not set")

type CheckoutCompleted struct {
	SessionID       string
	BookingID       string
	PaymentIntentID string
}

type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Parse verifies the Stripe signature of a webhook delivery. It reports
// false for event types other than a completed checkout.
func (v *WebhookVerifier) Parse(payload []byte, signature string) (CheckoutCompleted, bool, error) {
	if v.secret == "" {
		return CheckoutCompleted{}, false, ErrWebhookNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return CheckoutCompleted{}, false, fmt.Errorf("invalid webhook signature: %w", err)
	}

	if event.Type != eventCheckoutCompleted {
		return CheckoutCompleted{}, false, nil
	}

	var sess stripe.CheckoutSession
	if err = json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return CheckoutCompleted{}, false, fmt.Errorf("failed to decode checkout session: %w", err)
	}

	completed := CheckoutCompleted{
		SessionID: sess.ID,
		BookingID: sess.Metadata["bookingId"],
	}
	if sess.PaymentIntent != nil {
		completed.PaymentIntentID = sess.PaymentIntent.ID
	}

	return completed, true, nil
}
