package ratelimit

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAllowStartsWindowOnFirstHit(t *testing.T) {
	t.Parallel()

	db, mock := redismock.NewClientMock()
	limiter := New(slogdiscard.NewDiscardLogger(), db, 2, time.Minute)

	mock.ExpectIncr("k").SetVal(1)
	mock.ExpectExpire("k", time.Minute).SetVal(true)
	mock.ExpectIncr("k").SetVal(2)
	mock.ExpectIncr("k").SetVal(3)

	for _, want := range []bool{true, true, false} {
		ok, err := limiter.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, want, ok)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		user           *models.User
		remoteAddr     string
		key            string
		setup          func(mock redismock.ClientMock, key string)
		expectedStatus int
	}{
		{
			name:       "Anonymous under limit",
			remoteAddr: "10.0.0.1:5555",
			key:        "ratelimit:login:ip:10.0.0.1",
			setup: func(mock redismock.ClientMock, key string) {
				mock.ExpectIncr(key).SetVal(1)
				mock.ExpectExpire(key, time.Minute).SetVal(true)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:       "User over limit",
			user:       &models.User{ID: "u1"},
			remoteAddr: "10.0.0.1:5555",
			key:        "ratelimit:login:user:u1",
			setup: func(mock redismock.ClientMock, key string) {
				mock.ExpectIncr(key).SetVal(6)
			},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:       "Redis down lets requests through",
			remoteAddr: "10.0.0.2:5555",
			key:        "ratelimit:login:ip:10.0.0.2",
			setup: func(mock redismock.ClientMock, key string) {
				mock.ExpectIncr(key).SetErr(errors.New("connection refused"))
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			db, mock := redismock.NewClientMock()
			tc.setup(mock, tc.key)

			limiter := New(slogdiscard.NewDiscardLogger(), db, 5, time.Minute)
			handler := limiter.Middleware("login")(okHandler())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.user != nil {
				req = req.WithContext(auth.NewContext(req.Context(), *tc.user))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"status":"Error","error":"too many requests"}`, rr.Body.String())
				assert.Equal(t, "60", rr.Header().Get("Retry-After"))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
