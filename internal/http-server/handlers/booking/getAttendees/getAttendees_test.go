package getAttendees

import (
	"errors"
	"eventManager/internal/http-server/handlers/booking/getAttendees/mocks"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"eventManager/internal/services/booking"
	"eventManager/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const eventID = "6f1c2f4e-8a51-4c59-9f4b-1f0d8e8f3a10"

func TestGetAttendeesHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		eventID        string
		attendees      []models.Attendee
		err            error
		expectedStatus int
		bodyContains   string
	}{
		{
			name:           "Success",
			eventID:        eventID,
			attendees:      []models.Attendee{{BookingID: "b1", FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}},
			expectedStatus: http.StatusOK,
			bodyContains:   `"email":"grace@example.com"`,
		},
		{
			name:           "No attendees",
			eventID:        eventID,
			expectedStatus: http.StatusOK,
			bodyContains:   `"attendees":[]`,
		},
		{
			name:           "Not the owner",
			eventID:        eventID,
			err:            booking.ErrForbidden,
			expectedStatus: http.StatusForbidden,
			bodyContains:   "not authorized to view attendees for this event",
		},
		{
			name:           "Missing event",
			eventID:        eventID,
			err:            storage.ErrEventNotFound,
			expectedStatus: http.StatusNotFound,
			bodyContains:   "event not found",
		},
		{
			name:           "Storage failure",
			eventID:        eventID,
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
			bodyContains:   "failed to get attendees",
		},
		{
			name:           "Invalid id",
			eventID:        "x",
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "invalid event id format",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewAttendeesGetter(t)
			if tc.eventID == eventID {
				getter.On("Attendees", mock.Anything, "org1", eventID).Return(tc.attendees, tc.err)
			}

			router := chi.NewRouter()
			router.Get("/bookings/event/{eventId}/attendees", New(slogdiscard.NewDiscardLogger(), getter))

			req := httptest.NewRequest(http.MethodGet, "/bookings/event/"+tc.eventID+"/attendees", nil)
			req = req.WithContext(auth.NewContext(req.Context(), models.User{ID: "org1"}))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}
