package stripeWebhook

import (
	"bytes"
	"errors"
	"eventManager/internal/http-server/handlers/booking/stripeWebhook/mocks"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"eventManager/internal/payment"
	"eventManager/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	payload   = `{"type":"checkout.session.completed"}`
	bookingID = "9b2f6a1e-3c4d-4e5f-8a9b-0c1d2e3f4a5b"
)

func TestStripeWebhookHandler(t *testing.T) {
	t.Parallel()

	checkout := payment.CheckoutCompleted{SessionID: "cs_1", BookingID: bookingID, PaymentIntentID: "pi_1"}

	testCases := []struct {
		name           string
		parserSetup    func(m *mocks.WebhookParser)
		completerSetup func(m *mocks.CheckoutCompleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Checkout completed",
			parserSetup: func(m *mocks.WebhookParser) {
				m.On("Parse", []byte(payload), "t=1,v1=sig").Return(checkout, true, nil)
			},
			completerSetup: func(m *mocks.CheckoutCompleter) {
				m.On("CompleteCheckout", mock.Anything, bookingID, "pi_1").
					Return(models.Booking{ID: bookingID, PaymentStatus: models.PaymentCompleted}, true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","received":true}`,
		},
		{
			name: "Other event type",
			parserSetup: func(m *mocks.WebhookParser) {
				m.On("Parse", []byte(payload), "t=1,v1=sig").Return(payment.CheckoutCompleted{}, false, nil)
			},
			completerSetup: func(m *mocks.CheckoutCompleter) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","received":true}`,
		},
		{
			name: "Session without booking id",
			parserSetup: func(m *mocks.WebhookParser) {
				m.On("Parse", []byte(payload), "t=1,v1=sig").
					Return(payment.CheckoutCompleted{SessionID: "cs_other", PaymentIntentID: "pi_2"}, true, nil)
			},
			completerSetup: func(m *mocks.CheckoutCompleter) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","received":true}`,
		},
		{
			name: "Session with foreign booking id",
			parserSetup: func(m *mocks.WebhookParser) {
				m.On("Parse", []byte(payload), "t=1,v1=sig").
					Return(payment.CheckoutCompleted{SessionID: "cs_other", BookingID: "order-17"}, true, nil)
			},
			completerSetup: func(m *mocks.CheckoutCompleter) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","received":true}`,
		},
		{
			name: "Bad signature",
			parserSetup: func(m *mocks.WebhookParser) {
				m.On("Parse", []byte(payload), "t=1,v1=sig").Return(payment.CheckoutCompleted{}, false, errors.New("no match"))
			},
			completerSetup: func(m *mocks.CheckoutCompleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid webhook signature"}`,
		},
		{
			name: "Not configured",
			parserSetup: func(m *mocks.WebhookParser) {
				m.On("Parse", []byte(payload), "t=1,v1=sig").Return(payment.CheckoutCompleted{}, false, payment.ErrWebhookNotConfigured)
			},
			completerSetup: func(m *mocks.CheckoutCompleter) {},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"Error","error":"webhook is not configured"}`,
		},
		{
			name: "Unknown booking is acknowledged",
			parserSetup: func(m *mocks.WebhookParser) {
				m.On("Parse", []byte(payload), "t=1,v1=sig").Return(checkout, true, nil)
			},
			completerSetup: func(m *mocks.CheckoutCompleter) {
				m.On("CompleteCheckout", mock.Anything, bookingID, "pi_1").Return(models.Booking{}, false, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","received":true}`,
		},
		{
			name: "Storage failure is retried",
			parserSetup: func(m *mocks.WebhookParser) {
				m.On("Parse", []byte(payload), "t=1,v1=sig").Return(checkout, true, nil)
			},
			completerSetup: func(m *mocks.CheckoutCompleter) {
				m.On("CompleteCheckout", mock.Anything, bookingID, "pi_1").Return(models.Booking{}, false, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to process webhook"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parser := mocks.NewWebhookParser(t)
			tc.parserSetup(parser)
			completer := mocks.NewCheckoutCompleter(t)
			tc.completerSetup(completer)

			req := httptest.NewRequest(http.MethodPost, "/bookings/webhook", bytes.NewBufferString(payload))
			req.Header.Set("Stripe-Signature", "t=1,v1=sig")
			rr := httptest.NewRecorder()

			New(slogdiscard.NewDiscardLogger(), parser, completer).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestStripeWebhookRejectsLargePayload(t *testing.T) {
	t.Parallel()

	parser := mocks.NewWebhookParser(t)
	completer := mocks.NewCheckoutCompleter(t)

	req := httptest.NewRequest(http.MethodPost, "/bookings/webhook", bytes.NewReader(make([]byte, maxPayload+1)))
	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), parser, completer).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
