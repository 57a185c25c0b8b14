package auth

import (
	"errors"
	"eventManager/internal/http-server/middleware/auth/mocks"
	"eventManager/internal/lib/jwt"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	organizer := models.User{ID: "u1", UserType: models.UserTypeOrganizer, FirstName: "Ada"}
	claims := jwt.Claims{UserType: models.UserTypeOrganizer, RegisteredClaims: gojwt.RegisteredClaims{Subject: "u1"}}

	testCases := []struct {
		name           string
		header         string
		mockSetup      func(tokens *mocks.TokenParser, users *mocks.UserProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			header: "Bearer good",
			mockSetup: func(tokens *mocks.TokenParser, users *mocks.UserProvider) {
				tokens.On("Parse", "good").Return(claims, nil)
				users.On("UserByID", mock.Anything, "u1").Return(organizer, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Ada",
		},
		{
			name:           "Missing header",
			mockSetup:      func(tokens *mocks.TokenParser, users *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic abc",
			mockSetup:      func(tokens *mocks.TokenParser, users *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:   "Invalid token",
			header: "Bearer bad",
			mockSetup: func(tokens *mocks.TokenParser, users *mocks.UserProvider) {
				tokens.On("Parse", "bad").Return(jwt.Claims{}, jwt.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid or expired token"}`,
		},
		{
			name:   "Deleted user",
			header: "Bearer good",
			mockSetup: func(tokens *mocks.TokenParser, users *mocks.UserProvider) {
				tokens.On("Parse", "good").Return(claims, nil)
				users.On("UserByID", mock.Anything, "u1").Return(models.User{}, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:   "Storage failure",
			header: "Bearer good",
			mockSetup: func(tokens *mocks.TokenParser, users *mocks.UserProvider) {
				tokens.On("Parse", "good").Return(claims, nil)
				users.On("UserByID", mock.Anything, "u1").Return(models.User{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"internal error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tokens := mocks.NewTokenParser(t)
			users := mocks.NewUserProvider(t)
			tc.mockSetup(tokens, users)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, ok := UserFromContext(r.Context())
				assert.True(t, ok)
				_, _ = w.Write([]byte(user.FirstName))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			New(logger, tokens, users)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestRequireUserType(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireUserType(models.UserTypeOrganizer)(next)

	testCases := []struct {
		name           string
		user           *models.User
		expectedStatus int
	}{
		{name: "Organizer", user: &models.User{ID: "u1", UserType: models.UserTypeOrganizer}, expectedStatus: http.StatusNoContent},
		{name: "Attendee", user: &models.User{ID: "u2", UserType: models.UserTypeAttendee}, expectedStatus: http.StatusForbidden},
		{name: "Anonymous", expectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.user != nil {
				req = req.WithContext(NewContext(req.Context(), *tc.user))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
