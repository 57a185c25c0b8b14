package checkIn

import (
	"errors"
	"eventManager/internal/http-server/handlers/booking/checkIn/mocks"
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

const bookingID = "3c2b1a09-8f7e-4d6c-b5a4-938271605f4e"

func TestCheckInHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		booking        models.Booking
		err            error
		expectedStatus int
		bodyContains   string
	}{
		{
			name:           "Checked in",
			booking:        models.Booking{ID: bookingID, CheckInStatus: models.CheckedIn},
			expectedStatus: http.StatusOK,
			bodyContains:   `"message":"attendee checked in"`,
		},
		{
			name:           "Undone",
			booking:        models.Booking{ID: bookingID, CheckInStatus: models.NotCheckedIn},
			expectedStatus: http.StatusOK,
			bodyContains:   `"message":"check-in undone"`,
		},
		{
			name:           "Unpaid",
			err:            storage.ErrBookingNotCompleted,
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "cannot check in unpaid booking",
		},
		{
			name:           "Not the owner",
			err:            booking.ErrForbidden,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing",
			err:            storage.ErrBookingNotFound,
			expectedStatus: http.StatusNotFound,
			bodyContains:   "booking not found",
		},
		{
			name:           "Storage failure",
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
			bodyContains:   "failed to update check-in status",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			toggler := mocks.NewCheckInToggler(t)
			toggler.On("ToggleCheckIn", mock.Anything, "org1", bookingID).Return(tc.booking, tc.err)

			router := chi.NewRouter()
			router.Put("/bookings/{id}/check-in", New(slogdiscard.NewDiscardLogger(), toggler))

			req := httptest.NewRequest(http.MethodPut, "/bookings/"+bookingID+"/check-in", nil)
			req = req.WithContext(auth.NewContext(req.Context(), models.User{ID: "org1"}))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}
