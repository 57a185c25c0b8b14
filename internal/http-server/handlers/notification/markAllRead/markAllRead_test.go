package markAllRead

import (
	"errors"
	"eventManager/internal/http-server/handlers/notification/markAllRead/mocks"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMarkAllReadHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		modified       int64
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			modified:       4,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","modified":4}`,
		},
		{
			name:           "Nothing unread",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","modified":0}`,
		},
		{
			name:           "Storage failure",
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update notifications"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			marker := mocks.NewAllMarker(t)
			marker.On("MarkAllNotificationsRead", mock.Anything, "u1").Return(tc.modified, tc.err)

			req := httptest.NewRequest(http.MethodPut, "/notifications/read-all", nil)
			req = req.WithContext(auth.NewContext(req.Context(), models.User{ID: "u1"}))
			rr := httptest.NewRecorder()

			New(slogdiscard.NewDiscardLogger(), marker).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
