package getMyBookings

import (
	"errors"
	"eventManager/internal/http-server/handlers/booking/getMyBookings/mocks"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetMyBookingsHandler(t *testing.T) {
	t.Parallel()

	isTrue := func(b *bool) bool { return b != nil && *b }
	isFalse := func(b *bool) bool { return b != nil && !*b }
	isNil := func(b *bool) bool { return b == nil }

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.BookingsGetter)
		expectedStatus int
		bodyContains   string
	}{
		{
			name:  "All bookings",
			query: "",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("MyBookings", mock.Anything, "att1", models.PaymentStatus(""), mock.MatchedBy(isNil)).
					Return([]models.BookingDetails{{Booking: models.Booking{ID: "b1"}}}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"id":"b1"`,
		},
		{
			name:  "Completed upcoming",
			query: "?status=completed&upcoming=true",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("MyBookings", mock.Anything, "att1", models.PaymentCompleted, mock.MatchedBy(isTrue)).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"bookings":[]`,
		},
		{
			name:  "Past",
			query: "?upcoming=false",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("MyBookings", mock.Anything, "att1", models.PaymentStatus(""), mock.MatchedBy(isFalse)).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown status",
			query:          "?status=paid",
			mockSetup:      func(m *mocks.BookingsGetter) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "invalid status",
		},
		{
			name:           "Bad upcoming flag",
			query:          "?upcoming=soon",
			mockSetup:      func(m *mocks.BookingsGetter) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "upcoming must be true or false",
		},
		{
			name:  "Storage failure",
			query: "",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("MyBookings", mock.Anything, "att1", models.PaymentStatus(""), mock.Anything).
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			bodyContains:   "failed to get bookings",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewBookingsGetter(t)
			tc.mockSetup(getter)

			req := httptest.NewRequest(http.MethodGet, "/bookings/my-bookings"+tc.query, nil)
			req = req.WithContext(auth.NewContext(req.Context(), models.User{ID: "att1"}))
			rr := httptest.NewRecorder()

			New(slogdiscard.NewDiscardLogger(), getter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}
