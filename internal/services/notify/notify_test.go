package notify

import (
	"context"
	"errors"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"eventManager/internal/services/notify/mocks"
	"eventManager/internal/storage"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifySwallowsErrors(t *testing.T) {
	t.Parallel()

	store := mocks.NewStore(t)
	store.On("CreateNotification", mock.Anything, mock.Anything).
		Return(models.Notification{}, errors.New("db down"))

	n := New(slogdiscard.NewDiscardLogger(), store, nil)

	ok := n.Notify(context.Background(), models.Notification{UserID: "u1", Type: models.NotificationGeneral})
	assert.False(t, ok)
}

func TestNotifyFillsIDAndTime(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := mocks.NewStore(t)
	store.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n models.Notification) bool {
		return n.ID != "" && n.CreatedAt.Equal(fixed) && !n.Read
	})).Return(models.Notification{}, nil)

	n := New(slogdiscard.NewDiscardLogger(), store, nil)
	n.now = func() time.Time { return fixed }

	assert.True(t, n.Notify(context.Background(), models.Notification{UserID: "u1"}))
}

func TestEventChanged(t *testing.T) {
	t.Parallel()

	event := models.Event{ID: "e1", EventName: "Jazz Night"}

	testCases := []struct {
		name        string
		cancelled   bool
		attendees   []string
		failFor     string
		wantType    models.NotificationType
		wantMessage string
		wantSent    int
	}{
		{
			name:        "Cancelled",
			cancelled:   true,
			attendees:   []string{"a1", "a2", "a3"},
			wantType:    models.NotificationEventCancelled,
			wantMessage: "The event Jazz Night has been cancelled",
			wantSent:    3,
		},
		{
			name:        "Updated",
			attendees:   []string{"a1", "a2"},
			wantType:    models.NotificationEventUpdated,
			wantMessage: "Jazz Night has been updated. Check the latest details.",
			wantSent:    2,
		},
		{
			name:        "One store failure",
			attendees:   []string{"a1", "a2"},
			failFor:     "a2",
			wantType:    models.NotificationEventUpdated,
			wantMessage: "Jazz Night has been updated. Check the latest details.",
			wantSent:    1,
		},
		{
			name:      "Nobody to tell",
			cancelled: true,
			wantSent:  0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewStore(t)
			users := mocks.NewUserProvider(t)

			for _, id := range tc.attendees {
				var err error
				if id == tc.failFor {
					err = errors.New("db down")
				}

				store.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n models.Notification) bool {
					return n.UserID == id && n.Type == tc.wantType && n.Message == tc.wantMessage && n.RelatedEventID == "e1"
				})).Return(models.Notification{}, err).Once()

				if tc.cancelled {
					users.On("UserByID", mock.Anything, id).Return(models.User{ID: id, Email: id + "@example.com"}, nil).Once()
				}
			}

			n := New(slogdiscard.NewDiscardLogger(), store, users)

			sent := n.EventChanged(context.Background(), event, tc.cancelled, tc.attendees)
			assert.Equal(t, tc.wantSent, sent)
		})
	}
}

func TestBookingConfirmed(t *testing.T) {
	t.Parallel()

	booking := models.Booking{ID: "b1", AttendeeID: "a1", Quantity: 2, TotalAmount: decimal.RequireFromString("50")}
	event := models.Event{ID: "e1", EventName: "Jazz Night"}

	store := mocks.NewStore(t)
	store.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n models.Notification) bool {
		return n.Type == models.NotificationBookingConfirmed &&
			n.UserID == "a1" &&
			n.RelatedBookingID == "b1" &&
			n.Message == "Your booking for Jazz Night has been confirmed"
	})).Return(models.Notification{}, nil)

	users := mocks.NewUserProvider(t)
	users.On("UserByID", mock.Anything, "a1").Return(models.User{}, storage.ErrUserNotFound)

	n := New(slogdiscard.NewDiscardLogger(), store, users)
	n.BookingConfirmed(context.Background(), booking, event, models.Ticket{TicketType: "VIP"})
}
