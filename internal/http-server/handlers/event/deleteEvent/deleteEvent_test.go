package deleteEvent

import (
	"errors"
	"eventManager/internal/http-server/handlers/event/deleteEvent/mocks"
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

const eventID = "6f1c2f4e-8a51-4c59-9f4b-1f0d8e8f3a10"

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Deleted",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"event deleted successfully"}`,
		},
		{
			name:           "Has paid bookings",
			err:            storage.ErrEventHasBookings,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"cannot delete an event with paid bookings, cancel it instead"}`,
		},
		{
			name:           "Not the owner",
			err:            events.ErrForbidden,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"not authorized to delete this event"}`,
		},
		{
			name:           "Missing",
			err:            storage.ErrEventNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Storage failure",
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewEventDeleter(t)
			deleter.On("Delete", mock.Anything, "org1", eventID).Return(tc.err)

			router := chi.NewRouter()
			router.Delete("/events/{id}", New(slogdiscard.NewDiscardLogger(), deleter))

			req := httptest.NewRequest(http.MethodDelete, "/events/"+eventID, nil)
			req = req.WithContext(auth.NewContext(req.Context(), models.User{ID: "org1"}))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
