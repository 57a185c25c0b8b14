// Package booking implements ticket booking and payment completion.
package booking

import (
	"context"
	"errors"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/lib/metrics"
	"eventManager/internal/models"
	"eventManager/internal/payment"
	"eventManager/internal/storage"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrForbidden        = errors.New("access denied")
	ErrEventNotBookable = errors.New("event is not available for booking")
)

// InsufficientTicketsError is returned when fewer tickets remain than were
// asked for.
type InsufficientTicketsError struct {
	Remaining int
}

func (e *InsufficientTicketsError) Error() string {
	return fmt.Sprintf("only %d tickets available", e.Remaining)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	EventByID(ctx context.Context, id string) (models.Event, error)
	TicketByID(ctx context.Context, id string) (models.Ticket, error)
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	BookingByID(ctx context.Context, id string) (models.Booking, error)
	SetBookingTransaction(ctx context.Context, id, transactionID string) error
	CompleteBooking(ctx context.Context, id, transactionID string, from []models.PaymentStatus) (models.Booking, bool, error)
	ToggleCheckIn(ctx context.Context, id string) (models.CheckInStatus, error)
	BookingsByAttendee(ctx context.Context, attendeeID string, filter models.BookingFilter) ([]models.BookingDetails, error)
	AttendeesByEvent(ctx context.Context, eventID string) ([]models.Attendee, error)
	FailStalePendingBookings(ctx context.Context, ttl time.Duration) (int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	BookingConfirmed(ctx context.Context, booking models.Booking, event models.Event, ticket models.Ticket)
}

type Service struct {
	log        *slog.Logger
	storage    Storage
	gateway    payment.Gateway
	notifier   Notifier
	pendingTTL time.Duration
	now        func() time.Time
}

func New(log *slog.Logger, storage Storage, gateway payment.Gateway, notifier Notifier, pendingTTL time.Duration) *Service {
	return &Service{
		log:        log.With(slog.String("component", "services/booking")),
		storage:    storage,
		gateway:    gateway,
		notifier:   notifier,
		pendingTTL: pendingTTL,
		now:        time.Now,
	}
}

type CreateResult struct {
	Booking     models.Booking
	CheckoutURL *string
	MockPayment bool
}

// Create books quantity tickets of ticketID for the attendee. Free bookings
// complete immediately, paid ones stay pending until the checkout is paid.
func (s *Service) Create(ctx context.Context, attendeeID, eventID, ticketID string, quantity int) (CreateResult, error) {
	const op = "services.booking.Create"

	event, err := s.storage.EventByID(ctx, eventID)
	if err != nil {
		return CreateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if event.Status != models.EventStatusPublished {
		return CreateResult{}, ErrEventNotBookable
	}

	ticket, err := s.storage.TicketByID(ctx, ticketID)
	if err != nil {
		return CreateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if ticket.EventID != event.ID || !ticket.IsActive {
		return CreateResult{}, fmt.Errorf("%s: %w", op, storage.ErrTicketNotFound)
	}

	if remaining := ticket.Remaining(); quantity > remaining {
		return CreateResult{}, &InsufficientTicketsError{Remaining: remaining}
	}

	booking := models.Booking{
		AttendeeID:  attendeeID,
		EventID:     event.ID,
		TicketID:    ticket.ID,
		Quantity:    quantity,
		TotalAmount: ticket.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}

	if booking.TotalAmount.IsZero() {
		booking.PaymentStatus = models.PaymentCompleted
		booking.TransactionID = fmt.Sprintf("FREE_%d", s.now().UnixMilli())

		created, err := s.storage.CreateBooking(ctx, booking)
		if err != nil {
			return CreateResult{}, fmt.Errorf("%s: %w", op, err)
		}

		metrics.BookingsCreated.WithLabelValues("free").Inc()
		metrics.BookingsCompleted.WithLabelValues("free").Inc()
		s.notifier.BookingConfirmed(ctx, created, event, ticket)

		return CreateResult{Booking: created}, nil
	}

	booking.PaymentStatus = models.PaymentPending

	created, err := s.storage.CreateBooking(ctx, booking)
	if err != nil {
		return CreateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	checkout, err := s.gateway.CreateCheckout(ctx, payment.CheckoutRequest{
		BookingID:   created.ID,
		EventID:     event.ID,
		TicketID:    ticket.ID,
		EventName:   event.EventName,
		TicketType:  ticket.TicketType,
		Description: ticket.Description,
		UnitPrice:   ticket.Price,
		Quantity:    quantity,
	})
	if err != nil {
		// The booking stays pending and is expired by the sweeper.
		return CreateResult{}, fmt.Errorf("%s: failed to create checkout: %w", op, err)
	}

	if err = s.storage.SetBookingTransaction(ctx, created.ID, checkout.TransactionID); err != nil {
		return CreateResult{}, fmt.Errorf("%s: %w", op, err)
	}
	created.TransactionID = checkout.TransactionID

	mode := "stripe"
	if checkout.Mock {
		mode = "mock"
	}
	metrics.BookingsCreated.WithLabelValues(mode).Inc()

	result := CreateResult{
		Booking:     created,
		MockPayment: checkout.Mock,
	}
	if checkout.URL != "" {
		url := checkout.URL
		result.CheckoutURL = &url
	}

	return result, nil
}

type ConfirmResult struct {
	Booking          models.Booking
	AlreadyCompleted bool
}

// Confirm completes a pending booking on behalf of its owner. Confirming a
// completed booking again changes nothing.
func (s *Service) Confirm(ctx context.Context, attendeeID, bookingID, transactionID string) (ConfirmResult, error) {
	const op = "services.booking.Confirm"

	booking, err := s.storage.BookingByID(ctx, bookingID)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if booking.AttendeeID != attendeeID {
		return ConfirmResult{}, ErrForbidden
	}

	if booking.PaymentStatus == models.PaymentCompleted {
		return ConfirmResult{Booking: booking, AlreadyCompleted: true}, nil
	}

	completed, changed, err := s.storage.CompleteBooking(ctx, bookingID, transactionID,
		[]models.PaymentStatus{models.PaymentPending})
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if !changed {
		return ConfirmResult{Booking: completed, AlreadyCompleted: true}, nil
	}

	metrics.BookingsCompleted.WithLabelValues("confirm").Inc()
	s.notifyConfirmed(ctx, completed)

	return ConfirmResult{Booking: completed}, nil
}

// CompleteCheckout completes a booking paid through the payment provider.
// Bookings already expired by the sweeper are completed too since the money
// was captured.
func (s *Service) CompleteCheckout(ctx context.Context, bookingID, paymentIntentID string) (models.Booking, bool, error) {
	const op = "services.booking.CompleteCheckout"

	completed, changed, err := s.storage.CompleteBooking(ctx, bookingID, paymentIntentID,
		[]models.PaymentStatus{models.PaymentPending, models.PaymentFailed})
	if err != nil {
		return models.Booking{}, false, fmt.Errorf("%s: %w", op, err)
	}

	if changed {
		metrics.BookingsCompleted.WithLabelValues("webhook").Inc()
		s.notifyConfirmed(ctx, completed)
	}

	return completed, changed, nil
}

func (s *Service) notifyConfirmed(ctx context.Context, booking models.Booking) {
	event, err := s.storage.EventByID(ctx, booking.EventID)
	if err != nil {
		s.log.Warn("skipping confirmation notice", slog.String("booking_id", booking.ID), sl.Err(err))
		return
	}

	ticket, err := s.storage.TicketByID(ctx, booking.TicketID)
	if err != nil {
		s.log.Warn("skipping confirmation notice", slog.String("booking_id", booking.ID), sl.Err(err))
		return
	}

	s.notifier.BookingConfirmed(ctx, booking, event, ticket)
}

// ToggleCheckIn flips the check-in state of a paid booking for an event the
// organizer owns.
func (s *Service) ToggleCheckIn(ctx context.Context, organizerID, bookingID string) (models.Booking, error) {
	const op = "services.booking.ToggleCheckIn"

	booking, err := s.storage.BookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	event, err := s.storage.EventByID(ctx, booking.EventID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if event.OrganizerID != organizerID {
		return models.Booking{}, ErrForbidden
	}

	if booking.PaymentStatus != models.PaymentCompleted {
		return models.Booking{}, storage.ErrBookingNotCompleted
	}

	status, err := s.storage.ToggleCheckIn(ctx, bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}
	booking.CheckInStatus = status

	return booking, nil
}

func (s *Service) MyBookings(
	ctx context.Context,
	attendeeID string,
	status models.PaymentStatus,
	upcoming *bool,
) ([]models.BookingDetails, error) {
	const op = "services.booking.MyBookings"

	bookings, err := s.storage.BookingsByAttendee(ctx, attendeeID, models.BookingFilter{
		Status:   status,
		Upcoming: upcoming,
		Now:      s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *Service) Attendees(ctx context.Context, organizerID, eventID string) ([]models.Attendee, error) {
	const op = "services.booking.Attendees"

	event, err := s.storage.EventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if event.OrganizerID != organizerID {
		return nil, ErrForbidden
	}

	attendees, err := s.storage.AttendeesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return attendees, nil
}

// ExpirePending marks pending bookings older than the configured TTL as
// failed.
func (s *Service) ExpirePending(ctx context.Context) (int64, error) {
	const op = "services.booking.ExpirePending"

	n, err := s.storage.FailStalePendingBookings(ctx, s.pendingTTL)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if n > 0 {
		metrics.PendingBookingsExpired.Add(float64(n))
		s.log.Info("expired pending bookings", slog.Int64("count", n))
	}

	return n, nil
}
