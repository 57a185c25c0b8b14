// Package notify stores in-app notifications and sends the matching mock
// emails. Nothing here ever fails the caller: errors are logged and counted.
package notify

import (
	"context"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/lib/metrics"
	"eventManager/internal/models"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store interface {
	CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByID(ctx context.Context, id string) (models.User, error)
}

type Email struct {
	To      string
	Subject string
	Body    string
}

type Notifier struct {
	log   *slog.Logger
	store Store
	users UserProvider
	now   func() time.Time
}

func New(log *slog.Logger, store Store, users UserProvider) *Notifier {
	return &Notifier{
		log:   log.With(slog.String("component", "notify")),
		store: store,
		users: users,
		now:   time.Now,
	}
}

// Notify stores a single notification.
func (n *Notifier) Notify(ctx context.Context, notification models.Notification) bool {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = n.now().UTC()
	}

	if _, err := n.store.CreateNotification(ctx, notification); err != nil {
		metrics.NotificationsFailed.Inc()
		n.log.Error("failed to create notification",
			slog.String("user_id", notification.UserID),
			slog.String("type", string(notification.Type)),
			sl.Err(err),
		)
		return false
	}

	return true
}

// BookingConfirmed tells the attendee their booking went through.
func (n *Notifier) BookingConfirmed(ctx context.Context, booking models.Booking, event models.Event, ticket models.Ticket) {
	n.Notify(ctx, models.Notification{
		UserID:           booking.AttendeeID,
		Message:          fmt.Sprintf("Your booking for %s has been confirmed", event.EventName),
		Type:             models.NotificationBookingConfirmed,
		RelatedEventID:   event.ID,
		RelatedBookingID: booking.ID,
	})

	user, ok := n.recipient(ctx, booking.AttendeeID)
	if !ok {
		return
	}

	total := "Free"
	if booking.TotalAmount.IsPositive() {
		total = "GBP " + booking.TotalAmount.StringFixed(2)
	}

	n.SendEmail(Email{
		To:      user.Email,
		Subject: "Booking Confirmed: " + event.EventName,
		Body: strings.Join([]string{
			"Hi " + user.FirstName + ",",
			"",
			"Your booking for " + event.EventName + " has been confirmed!",
			"",
			"Event: " + event.EventName,
			"Date: " + event.EventDate.Format(time.DateOnly) + " " + event.EventTime,
			"Venue: " + event.Venue,
			"Ticket Type: " + ticket.TicketType,
			fmt.Sprintf("Quantity: %d", booking.Quantity),
			"Total Amount: " + total,
		}, "\n"),
	})
}

// EventChanged fans a notification out to every given attendee. A cancelled
// event also gets a cancellation email per attendee. It returns how many
// notifications were stored.
func (n *Notifier) EventChanged(ctx context.Context, event models.Event, cancelled bool, attendeeIDs []string) int {
	typ := models.NotificationEventUpdated
	message := event.EventName + " has been updated. Check the latest details."
	if cancelled {
		typ = models.NotificationEventCancelled
		message = "The event " + event.EventName + " has been cancelled"
	}

	sent := 0
	for _, id := range attendeeIDs {
		if ctx.Err() != nil {
			n.log.Warn("fan-out interrupted", slog.String("event_id", event.ID), sl.Err(ctx.Err()))
			break
		}

		if n.Notify(ctx, models.Notification{
			UserID:         id,
			Message:        message,
			Type:           typ,
			RelatedEventID: event.ID,
		}) {
			sent++
		}

		if !cancelled {
			continue
		}

		if user, ok := n.recipient(ctx, id); ok {
			n.SendEmail(Email{
				To:      user.Email,
				Subject: "Event Cancelled: " + event.EventName,
				Body: strings.Join([]string{
					"Hi " + user.FirstName + ",",
					"",
					`We regret to inform you that the event "` + event.EventName + `" has been cancelled.`,
					"",
					"If you had a booking, a refund will be processed automatically.",
				}, "\n"),
			})
		}
	}

	n.log.Info("event notifications sent",
		slog.String("event_id", event.ID),
		slog.String("type", string(typ)),
		slog.Int("sent", sent),
		slog.Int("recipients", len(attendeeIDs)),
	)

	return sent
}

// SendEmail only logs the message, there is no mail transport.
func (n *Notifier) SendEmail(email Email) {
	n.log.Info("email sent (mock)",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("body", email.Body),
	)
}

func (n *Notifier) recipient(ctx context.Context, userID string) (models.User, bool) {
	if n.users == nil {
		return models.User{}, false
	}

	user, err := n.users.UserByID(ctx, userID)
	if err != nil {
		n.log.Warn("no email recipient", slog.String("user_id", userID), sl.Err(err))
		return models.User{}, false
	}

	return user, true
}
