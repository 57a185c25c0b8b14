package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const bookingColumns = `id, attendee_id, event_id, ticket_id, quantity, total_amount, booking_date,
	payment_status, check_in_status, transaction_id, created_at, updated_at`

func scanBooking(row scanner) (models.Booking, error) {
	var booking models.Booking
	err := row.Scan(
		&booking.ID,
		&booking.AttendeeID,
		&booking.EventID,
		&booking.TicketID,
		&booking.Quantity,
		&booking.TotalAmount,
		&booking.BookingDate,
		&booking.PaymentStatus,
		&booking.CheckInStatus,
		&booking.TransactionID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	return booking, err
}

// CreateBooking inserts a booking. A booking created already completed
// claims its tickets in the same transaction.
func (s *Storage) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = models.PaymentPending
	}
	if booking.CheckInStatus == "" {
		booking.CheckInStatus = models.NotCheckedIn
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	query := `
		INSERT INTO bookings (id, attendee_id, event_id, ticket_id, quantity, total_amount,
			payment_status, check_in_status, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bookingColumns

	created, err := scanBooking(tx.QueryRowContext(ctx, query,
		booking.ID,
		booking.AttendeeID,
		booking.EventID,
		booking.TicketID,
		booking.Quantity,
		booking.TotalAmount,
		booking.PaymentStatus,
		booking.CheckInStatus,
		booking.TransactionID,
	))
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	if created.PaymentStatus == models.PaymentCompleted {
		ok, err := incrementSold(ctx, tx, created.TicketID, created.Quantity)
		if err != nil {
			return models.Booking{}, err
		}
		if !ok {
			return models.Booking{}, storage.ErrTicketsSoldOut
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

func (s *Storage) BookingByID(ctx context.Context, id string) (models.Booking, error) {
	return bookingByID(ctx, s.DB, id)
}

func bookingByID(ctx context.Context, q querier, id string) (models.Booking, error) {
	booking, err := scanBooking(q.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (s *Storage) SetBookingTransaction(ctx context.Context, id, transactionID string) error {
	query := `UPDATE bookings SET transaction_id = $2, updated_at = NOW() WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query, id, transactionID)
	if err != nil {
		return fmt.Errorf("failed to set transaction id: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

// CompleteBooking moves a booking whose payment status is one of from to
// completed and claims its tickets, all in one transaction. It reports false
// without touching the tickets when the booking was already completed.
func (s *Storage) CompleteBooking(
	ctx context.Context,
	id, transactionID string,
	from []models.PaymentStatus,
) (models.Booking, bool, error) {
	if len(from) == 0 {
		from = []models.PaymentStatus{models.PaymentPending}
	}

	statuses := make([]string, 0, len(from))
	for _, st := range from {
		statuses = append(statuses, string(st))
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	query := `
		UPDATE bookings
		SET payment_status = 'completed',
			transaction_id = COALESCE(NULLIF($2, ''), transaction_id),
			updated_at = NOW()
		WHERE id = $1 AND payment_status = ANY($3)
		RETURNING ` + bookingColumns

	booking, err := scanBooking(tx.QueryRowContext(ctx, query, id, transactionID, pq.Array(statuses)))
	if errors.Is(err, sql.ErrNoRows) {
		existing, err := bookingByID(ctx, tx, id)
		if err != nil {
			return models.Booking{}, false, err
		}

		if existing.PaymentStatus == models.PaymentCompleted {
			return existing, false, nil
		}

		return existing, false, storage.ErrBookingNotPayable
	}
	if err != nil {
		return models.Booking{}, false, fmt.Errorf("failed to complete booking: %w", err)
	}

	ok, err := incrementSold(ctx, tx, booking.TicketID, booking.Quantity)
	if err != nil {
		return models.Booking{}, false, err
	}
	if !ok {
		return models.Booking{}, false, storage.ErrTicketsSoldOut
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return booking, true, nil
}

// ToggleCheckIn flips the check-in state of a paid booking.
func (s *Storage) ToggleCheckIn(ctx context.Context, id string) (models.CheckInStatus, error) {
	query := `
		UPDATE bookings
		SET check_in_status = CASE WHEN check_in_status = 'checked_in' THEN 'not_checked_in' ELSE 'checked_in' END,
			updated_at = NOW()
		WHERE id = $1 AND payment_status = 'completed'
		RETURNING check_in_status`

	var status models.CheckInStatus
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&status)
	if err == nil {
		return status, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to toggle check-in: %w", err)
	}

	if _, err = s.BookingByID(ctx, id); err != nil {
		return "", err
	}

	return "", storage.ErrBookingNotCompleted
}

func (s *Storage) BookingsByAttendee(
	ctx context.Context,
	attendeeID string,
	filter models.BookingFilter,
) ([]models.BookingDetails, error) {
	query := `
		SELECT b.id, b.attendee_id, b.event_id, b.ticket_id, b.quantity, b.total_amount, b.booking_date,
			b.payment_status, b.check_in_status, b.transaction_id, b.created_at, b.updated_at,
			e.id, e.event_name, e.event_date, e.event_time, e.venue, e.status,
			t.id, t.ticket_type, t.price
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		JOIN tickets t ON t.id = b.ticket_id
		WHERE b.attendee_id = $1`

	args := []any{attendeeID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND b.payment_status = $%d`, len(args))
	}

	if filter.Upcoming != nil {
		args = append(args, filter.Now)
		if *filter.Upcoming {
			query += fmt.Sprintf(` AND e.event_date >= $%d`, len(args))
		} else {
			query += fmt.Sprintf(` AND e.event_date < $%d`, len(args))
		}
	}

	query += ` ORDER BY b.booking_date DESC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.BookingDetails, 0)
	for rows.Next() {
		var d models.BookingDetails
		err = rows.Scan(
			&d.ID,
			&d.AttendeeID,
			&d.EventID,
			&d.TicketID,
			&d.Quantity,
			&d.TotalAmount,
			&d.BookingDate,
			&d.PaymentStatus,
			&d.CheckInStatus,
			&d.TransactionID,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.Event.ID,
			&d.Event.EventName,
			&d.Event.EventDate,
			&d.Event.EventTime,
			&d.Event.Venue,
			&d.Event.Status,
			&d.Ticket.ID,
			&d.Ticket.TicketType,
			&d.Ticket.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// AttendeesByEvent lists the paid bookings of an event with attendee contacts.
func (s *Storage) AttendeesByEvent(ctx context.Context, eventID string) ([]models.Attendee, error) {
	query := `
		SELECT b.id, t.ticket_type, b.quantity, b.total_amount, b.check_in_status, b.booking_date,
			u.first_name, u.last_name, u.email
		FROM bookings b
		JOIN users u ON u.id = b.attendee_id
		JOIN tickets t ON t.id = b.ticket_id
		WHERE b.event_id = $1 AND b.payment_status = 'completed'
		ORDER BY b.booking_date DESC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendees: %w", err)
	}
	defer rows.Close()

	attendees := make([]models.Attendee, 0)
	for rows.Next() {
		var a models.Attendee
		err = rows.Scan(
			&a.BookingID,
			&a.TicketType,
			&a.Quantity,
			&a.TotalAmount,
			&a.CheckInStatus,
			&a.BookingDate,
			&a.FirstName,
			&a.LastName,
			&a.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendee: %w", err)
		}
		attendees = append(attendees, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendees: %w", err)
	}

	return attendees, nil
}

// CompletedAttendeeIDs returns each attendee holding a paid booking once.
func (s *Storage) CompletedAttendeeIDs(ctx context.Context, eventID string) ([]string, error) {
	query := `
		SELECT DISTINCT attendee_id
		FROM bookings
		WHERE event_id = $1 AND payment_status = 'completed'`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan attendee id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendee ids: %w", err)
	}

	return ids, nil
}

// FailStalePendingBookings marks bookings left pending for longer than ttl as failed.
func (s *Storage) FailStalePendingBookings(ctx context.Context, ttl time.Duration) (int64, error) {
	query := `
		UPDATE bookings
		SET payment_status = 'failed', updated_at = NOW()
		WHERE payment_status = 'pending' AND created_at < $1`

	res, err := s.DB.ExecContext(ctx, query, time.Now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending bookings: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending bookings: %w", err)
	}

	return n, nil
}
