package createTicket

import (
	"bytes"
	"errors"
	"eventManager/internal/http-server/handlers/ticket/createTicket/mocks"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"eventManager/internal/services/events"
	"eventManager/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const eventID = "6f1c2f4e-8a51-4c59-9f4b-1f0d8e8f3a10"

func TestCreateTicketHandler(t *testing.T) {
	t.Parallel()

	validBody := `{"event_id":"` + eventID + `","ticket_type":"Early bird","price":"12.50","quantity_available":100}`

	matchTicket := mock.MatchedBy(func(tk models.Ticket) bool {
		return tk.EventID == eventID &&
			tk.TicketType == "Early bird" &&
			tk.Price.Equal(decimal.RequireFromString("12.5")) &&
			tk.QuantityAvailable == 100
	})

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TicketCreator)
		expectedStatus int
		bodyContains   []string
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, "org1", matchTicket).Return(models.Ticket{
					ID: "t1", EventID: eventID, TicketType: "Early bird", QuantityAvailable: 100, IsActive: true,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			bodyContains:   []string{`"remaining_quantity":100`, `"is_sold_out":false`},
		},
		{
			name:        "Free ticket",
			requestBody: `{"event_id":"` + eventID + `","ticket_type":"Free","price":0,"quantity_available":5}`,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, "org1", mock.MatchedBy(func(tk models.Ticket) bool {
					return tk.Price.IsZero()
				})).Return(models.Ticket{ID: "t2", QuantityAvailable: 5}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing price",
			requestBody:    `{"event_id":"` + eventID + `","ticket_type":"Standard","quantity_available":5}`,
			mockSetup:      func(m *mocks.TicketCreator) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   []string{`"price"`},
		},
		{
			name:           "Price above limit",
			requestBody:    `{"event_id":"` + eventID + `","ticket_type":"Gold","price":10000.01,"quantity_available":5}`,
			mockSetup:      func(m *mocks.TicketCreator) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   []string{"field price must be at most 10000"},
		},
		{
			name:           "Bad event id",
			requestBody:    `{"event_id":"1","ticket_type":"Standard","price":1,"quantity_available":5}`,
			mockSetup:      func(m *mocks.TicketCreator) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   []string{"field event_id is not a valid id"},
		},
		{
			name:        "Not the owner",
			requestBody: validBody,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, "org1", matchTicket).Return(models.Ticket{}, events.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "Event not found",
			requestBody: validBody,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, "org1", matchTicket).Return(models.Ticket{}, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			bodyContains:   []string{"event not found"},
		},
		{
			name:        "Storage failure",
			requestBody: validBody,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, "org1", matchTicket).Return(models.Ticket{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			bodyContains:   []string{"failed to create ticket"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewTicketCreator(t)
			tc.mockSetup(creator)

			req := httptest.NewRequest(http.MethodPost, "/tickets", bytes.NewBufferString(tc.requestBody))
			req = req.WithContext(auth.NewContext(req.Context(), models.User{ID: "org1"}))
			rr := httptest.NewRecorder()

			New(slogdiscard.NewDiscardLogger(), creator).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			for _, s := range tc.bodyContains {
				assert.Contains(t, rr.Body.String(), s)
			}
		})
	}
}
