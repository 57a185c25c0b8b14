package updateTicket

import (
	"bytes"
	"errors"
	"eventManager/internal/http-server/handlers/ticket/updateTicket/mocks"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"eventManager/internal/services/events"
	"eventManager/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const ticketID = "0b5e7c9a-2d4f-4e61-8a3b-9c7d1e2f3a4b"

func TestUpdateTicketHandler(t *testing.T) {
	t.Parallel()

	qty := 20
	qtyUpdate := models.TicketUpdate{QuantityAvailable: &qty}

	testCases := []struct {
		name           string
		ticketID       string
		requestBody    string
		mockSetup      func(m *mocks.TicketUpdater)
		expectedStatus int
		bodyContains   string
	}{
		{
			name:        "Success",
			ticketID:    ticketID,
			requestBody: `{"quantity_available":20}`,
			mockSetup: func(m *mocks.TicketUpdater) {
				m.On("UpdateTicket", mock.Anything, "org1", ticketID, qtyUpdate).
					Return(models.Ticket{ID: ticketID, QuantityAvailable: 20, QuantitySold: 5}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"remaining_quantity":15`,
		},
		{
			name:        "Deactivate",
			ticketID:    ticketID,
			requestBody: `{"is_active":false}`,
			mockSetup: func(m *mocks.TicketUpdater) {
				m.On("UpdateTicket", mock.Anything, "org1", ticketID, mock.MatchedBy(func(u models.TicketUpdate) bool {
					return u.IsActive != nil && !*u.IsActive && u.Price == nil
				})).Return(models.Ticket{ID: ticketID}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"is_active":false`,
		},
		{
			name:           "Negative price",
			ticketID:       ticketID,
			requestBody:    `{"price":-1}`,
			mockSetup:      func(m *mocks.TicketUpdater) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "field price must be at least 0",
		},
		{
			name:           "Invalid id",
			ticketID:       "7",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.TicketUpdater) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "invalid ticket id format",
		},
		{
			name:        "Below sold",
			ticketID:    ticketID,
			requestBody: `{"quantity_available":20}`,
			mockSetup: func(m *mocks.TicketUpdater) {
				m.On("UpdateTicket", mock.Anything, "org1", ticketID, qtyUpdate).Return(models.Ticket{}, storage.ErrCapacityBelowSold)
			},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "quantity available cannot be less than quantity sold",
		},
		{
			name:        "Not the owner",
			ticketID:    ticketID,
			requestBody: `{"quantity_available":20}`,
			mockSetup: func(m *mocks.TicketUpdater) {
				m.On("UpdateTicket", mock.Anything, "org1", ticketID, qtyUpdate).Return(models.Ticket{}, events.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "Missing",
			ticketID:    ticketID,
			requestBody: `{"quantity_available":20}`,
			mockSetup: func(m *mocks.TicketUpdater) {
				m.On("UpdateTicket", mock.Anything, "org1", ticketID, qtyUpdate).Return(models.Ticket{}, storage.ErrTicketNotFound)
			},
			expectedStatus: http.StatusNotFound,
			bodyContains:   "ticket not found",
		},
		{
			name:        "Storage failure",
			ticketID:    ticketID,
			requestBody: `{"quantity_available":20}`,
			mockSetup: func(m *mocks.TicketUpdater) {
				m.On("UpdateTicket", mock.Anything, "org1", ticketID, qtyUpdate).Return(models.Ticket{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			bodyContains:   "failed to update ticket",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewTicketUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Put("/tickets/{id}", New(slogdiscard.NewDiscardLogger(), updater))

			req := httptest.NewRequest(http.MethodPut, "/tickets/"+tc.ticketID, bytes.NewBufferString(tc.requestBody))
			req = req.WithContext(auth.NewContext(req.Context(), models.User{ID: "org1"}))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}
