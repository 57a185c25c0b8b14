package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCols = []string{
	"id", "attendee_id", "event_id", "ticket_id", "quantity", "total_amount", "booking_date",
	"payment_status", "check_in_status", "transaction_id", "created_at", "updated_at",
}

func newMock(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return &Storage{DB: db}, mock
}

func bookingRows(status models.PaymentStatus) *sqlmock.Rows {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingCols).
		AddRow("b1", "u1", "e1", "t1", 2, "20.00", now, string(status), "not_checked_in", "cs_1", now, now)
}

func TestCompleteBooking(t *testing.T) {
	t.Parallel()

	t.Run("Completes pending booking and claims tickets once", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE bookings").
			WithArgs("b1", "pi_1", sqlmock.AnyArg()).
			WillReturnRows(bookingRows(models.PaymentCompleted))
		mock.ExpectExec("UPDATE tickets SET quantity_sold").
			WithArgs("t1", 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE bookings").
			WithArgs("b1", "pi_1", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(bookingCols))
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs("b1").
			WillReturnRows(bookingRows(models.PaymentCompleted))
		mock.ExpectRollback()

		booking, completed, err := s.CompleteBooking(context.Background(), "b1", "pi_1", nil)
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, models.PaymentCompleted, booking.PaymentStatus)
		assert.True(t, decimal.NewFromInt(20).Equal(booking.TotalAmount))

		booking, completed, err = s.CompleteBooking(context.Background(), "b1", "pi_1", nil)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, "b1", booking.ID)
	})

	t.Run("Sold out rolls back", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE bookings").
			WithArgs("b1", "", sqlmock.AnyArg()).
			WillReturnRows(bookingRows(models.PaymentCompleted))
		mock.ExpectExec("UPDATE tickets SET quantity_sold").
			WithArgs("t1", 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, completed, err := s.CompleteBooking(context.Background(), "b1", "", nil)
		assert.ErrorIs(t, err, storage.ErrTicketsSoldOut)
		assert.False(t, completed)
	})

	t.Run("Failed booking is not payable from pending only", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE bookings").
			WithArgs("b1", "", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(bookingCols))
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs("b1").
			WillReturnRows(bookingRows(models.PaymentFailed))
		mock.ExpectRollback()

		_, _, err := s.CompleteBooking(context.Background(), "b1", "", []models.PaymentStatus{models.PaymentPending})
		assert.ErrorIs(t, err, storage.ErrBookingNotPayable)
	})

	t.Run("Missing booking", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE bookings").
			WithArgs("b1", "", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(bookingCols))
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs("b1").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, _, err := s.CompleteBooking(context.Background(), "b1", "", nil)
		assert.ErrorIs(t, err, storage.ErrBookingNotFound)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	t.Run("Completed booking claims tickets in the same transaction", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO bookings").WillReturnRows(bookingRows(models.PaymentCompleted))
		mock.ExpectExec("UPDATE tickets SET quantity_sold").
			WithArgs("t1", 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		booking, err := s.CreateBooking(context.Background(), models.Booking{
			AttendeeID:    "u1",
			EventID:       "e1",
			TicketID:      "t1",
			Quantity:      2,
			PaymentStatus: models.PaymentCompleted,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentCompleted, booking.PaymentStatus)
	})

	t.Run("Pending booking leaves tickets alone", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO bookings").WillReturnRows(bookingRows(models.PaymentPending))
		mock.ExpectCommit()

		booking, err := s.CreateBooking(context.Background(), models.Booking{
			AttendeeID: "u1",
			EventID:    "e1",
			TicketID:   "t1",
			Quantity:   2,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentPending, booking.PaymentStatus)
	})

	t.Run("Sold out", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO bookings").WillReturnRows(bookingRows(models.PaymentCompleted))
		mock.ExpectExec("UPDATE tickets SET quantity_sold").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := s.CreateBooking(context.Background(), models.Booking{PaymentStatus: models.PaymentCompleted})
		assert.ErrorIs(t, err, storage.ErrTicketsSoldOut)
	})
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})

	_, err := s.CreateUser(context.Background(), models.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, storage.ErrUserExists)
}

func TestDeleteTicket(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		sold            int
		booked          bool
		expectStatement string
		wantDeactivated bool
	}{
		{name: "Unbooked ticket is deleted", expectStatement: "DELETE FROM tickets"},
		{name: "Sold ticket is deactivated", sold: 3, booked: true, expectStatement: "UPDATE tickets SET is_active = FALSE", wantDeactivated: true},
		{name: "Ticket with pending bookings is deactivated", booked: true, expectStatement: "UPDATE tickets SET is_active = FALSE", wantDeactivated: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMock(t)

			mock.ExpectBegin()
			mock.ExpectQuery("SELECT quantity_sold FROM tickets").
				WithArgs("t1").
				WillReturnRows(sqlmock.NewRows([]string{"quantity_sold"}).AddRow(tc.sold))
			mock.ExpectQuery("SELECT EXISTS").
				WithArgs("t1").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tc.booked))
			mock.ExpectExec(tc.expectStatement).WithArgs("t1").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			deactivated, err := s.DeleteTicket(context.Background(), "t1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantDeactivated, deactivated)
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		deleted int64
		exists  bool
		wantErr error
	}{
		{name: "Deleted", deleted: 1},
		{name: "Has paid bookings", exists: true, wantErr: storage.ErrEventHasBookings},
		{name: "Not found", wantErr: storage.ErrEventNotFound},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMock(t)

			mock.ExpectExec("DELETE FROM events").WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, tc.deleted))
			if tc.deleted == 0 {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs("e1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tc.exists))
			}

			err := s.DeleteEvent(context.Background(), "e1")
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr))
		})
	}
}

func TestToggleCheckInUnpaid(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery("UPDATE bookings").WithArgs("b1").WillReturnRows(sqlmock.NewRows([]string{"check_in_status"}))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").WithArgs("b1").WillReturnRows(bookingRows(models.PaymentPending))

	_, err := s.ToggleCheckIn(context.Background(), "b1")
	assert.ErrorIs(t, err, storage.ErrBookingNotCompleted)
}

func TestBuildEventFilter(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Defaults to published future events", func(t *testing.T) {
		t.Parallel()

		where, args := buildEventFilter(models.EventFilter{Now: now})

		assert.Equal(t, " WHERE e.status = $1 AND e.event_date >= $2", where)
		assert.Equal(t, []any{models.EventStatusPublished, now}, args)
	})

	t.Run("All filters", func(t *testing.T) {
		t.Parallel()

		from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
		lo := decimal.NewFromInt(10)
		hi := decimal.NewFromInt(50)

		where, args := buildEventFilter(models.EventFilter{
			Search:   "50%_jazz",
			Category: models.CategoryMusic,
			DateFrom: &from,
			DateTo:   &to,
			PriceMin: &lo,
			PriceMax: &hi,
			Status:   models.EventStatusCancelled,
			Now:      now,
		})

		assert.True(t, strings.HasPrefix(where, " WHERE e.status = $1 AND (e.event_name ILIKE $2"))
		assert.Contains(t, where, "e.category = $3")
		assert.Contains(t, where, "e.event_date >= $4")
		assert.Contains(t, where, "e.event_date <= $5")
		assert.Contains(t, where, "EXISTS (SELECT 1 FROM tickets t WHERE t.event_id = e.id AND t.is_active AND t.price >= $6 AND t.price <= $7)")
		assert.NotContains(t, where, "$8")

		require.Len(t, args, 7)
		assert.Equal(t, models.EventStatusCancelled, args[0])
		assert.Equal(t, `%50\%\_jazz%`, args[1])
		assert.Equal(t, time.Date(2025, 7, 31, 23, 59, 59, 999000000, time.UTC), args[4])
	})
}

func TestEventOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ORDER BY e.event_date ASC, e.id", eventOrder(models.EventFilter{}))
	assert.Equal(t, " ORDER BY e.event_name DESC, e.id", eventOrder(models.EventFilter{SortBy: models.SortByName, SortDesc: true}))
	assert.Equal(t, " ORDER BY p.min_price ASC NULLS LAST, e.event_date ASC, e.id",
		eventOrder(models.EventFilter{SortBy: models.SortByPrice}))
	assert.Equal(t, " ORDER BY p.min_price DESC NULLS LAST, e.event_date ASC, e.id",
		eventOrder(models.EventFilter{SortBy: models.SortByPrice, SortDesc: true}))
}
