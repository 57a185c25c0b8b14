package postgres

import (
	"context"
	"eventManager/internal/models"
	"fmt"
	"time"
)

// Every aggregate below only counts completed bookings.

func (s *Storage) Dashboard(ctx context.Context, organizerID string, now time.Time) (models.Dashboard, error) {
	var (
		d   models.Dashboard
		err error
	)

	overview := `
		SELECT
			(SELECT COUNT(*) FROM events WHERE organizer_id = $1),
			(SELECT COUNT(*) FROM events WHERE organizer_id = $1 AND status = 'published'),
			(SELECT COUNT(*) FROM events WHERE organizer_id = $1 AND status = 'published' AND event_date >= $2),
			COALESCE(SUM(b.total_amount), 0),
			COALESCE(SUM(b.quantity), 0),
			COUNT(b.id)
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE e.organizer_id = $1 AND b.payment_status = 'completed'`

	err = s.DB.QueryRowContext(ctx, overview, organizerID, now).Scan(
		&d.Overview.TotalEvents,
		&d.Overview.PublishedEvents,
		&d.Overview.UpcomingEvents,
		&d.Overview.TotalRevenue,
		&d.Overview.TotalTicketsSold,
		&d.Overview.TotalBookings,
	)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("failed to get dashboard overview: %w", err)
	}

	if d.RevenueByEvent, err = s.revenueByEvent(ctx, organizerID); err != nil {
		return models.Dashboard{}, err
	}

	if d.TicketsByType, err = s.ticketsByType(ctx, organizerID); err != nil {
		return models.Dashboard{}, err
	}

	since := now.UTC().Truncate(24*time.Hour).AddDate(0, 0, -29)
	salesQuery := `
		SELECT TO_CHAR(b.booking_date AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
			SUM(b.total_amount), SUM(b.quantity)
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE e.organizer_id = $1 AND b.payment_status = 'completed' AND b.booking_date >= $2
		GROUP BY day
		ORDER BY day ASC`

	if d.SalesOverTime, err = s.dailySales(ctx, salesQuery, organizerID, since); err != nil {
		return models.Dashboard{}, err
	}

	if d.RecentBookings, err = s.recentBookings(ctx, organizerID); err != nil {
		return models.Dashboard{}, err
	}

	return d, nil
}

func (s *Storage) revenueByEvent(ctx context.Context, organizerID string) ([]models.EventRevenue, error) {
	query := `
		SELECT e.id, e.event_name, SUM(b.total_amount) AS revenue, SUM(b.quantity)
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE e.organizer_id = $1 AND b.payment_status = 'completed'
		GROUP BY e.id, e.event_name
		ORDER BY revenue DESC
		LIMIT 10`

	rows, err := s.DB.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue by event: %w", err)
	}
	defer rows.Close()

	result := make([]models.EventRevenue, 0)
	for rows.Next() {
		var r models.EventRevenue
		if err = rows.Scan(&r.EventID, &r.EventName, &r.Revenue, &r.TicketsSold); err != nil {
			return nil, fmt.Errorf("failed to scan revenue by event: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

func (s *Storage) ticketsByType(ctx context.Context, organizerID string) ([]models.TicketTypeSales, error) {
	query := `
		SELECT t.ticket_type, SUM(b.quantity), SUM(b.total_amount)
		FROM bookings b
		JOIN tickets t ON t.id = b.ticket_id
		JOIN events e ON e.id = b.event_id
		WHERE e.organizer_id = $1 AND b.payment_status = 'completed'
		GROUP BY t.ticket_type
		ORDER BY t.ticket_type`

	rows, err := s.DB.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets by type: %w", err)
	}
	defer rows.Close()

	result := make([]models.TicketTypeSales, 0)
	for rows.Next() {
		var r models.TicketTypeSales
		if err = rows.Scan(&r.TicketType, &r.Count, &r.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan tickets by type: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

func (s *Storage) dailySales(ctx context.Context, query string, args ...any) ([]models.DailySales, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales over time: %w", err)
	}
	defer rows.Close()

	result := make([]models.DailySales, 0)
	for rows.Next() {
		var r models.DailySales
		if err = rows.Scan(&r.Date, &r.Revenue, &r.Tickets); err != nil {
			return nil, fmt.Errorf("failed to scan sales over time: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

func (s *Storage) recentBookings(ctx context.Context, organizerID string) ([]models.RecentBooking, error) {
	query := `
		SELECT b.id, e.event_name, u.first_name || ' ' || u.last_name, b.quantity, b.total_amount, b.booking_date
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		JOIN users u ON u.id = b.attendee_id
		WHERE e.organizer_id = $1 AND b.payment_status = 'completed'
		ORDER BY b.booking_date DESC
		LIMIT 5`

	rows, err := s.DB.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}
	defer rows.Close()

	result := make([]models.RecentBooking, 0)
	for rows.Next() {
		var r models.RecentBooking
		if err = rows.Scan(&r.BookingID, &r.EventName, &r.AttendeeName, &r.Quantity, &r.TotalAmount, &r.BookingDate); err != nil {
			return nil, fmt.Errorf("failed to scan recent booking: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

func (s *Storage) EventSales(ctx context.Context, eventID string) (models.EventSales, error) {
	var es models.EventSales

	totals := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(quantity), 0), COUNT(*),
			COUNT(*) FILTER (WHERE check_in_status = 'checked_in')
		FROM bookings
		WHERE event_id = $1 AND payment_status = 'completed'`

	err := s.DB.QueryRowContext(ctx, totals, eventID).Scan(
		&es.TotalRevenue,
		&es.TotalTicketsSold,
		&es.TotalBookings,
		&es.CheckedIn,
	)
	if err != nil {
		return models.EventSales{}, fmt.Errorf("failed to get event totals: %w", err)
	}

	err = s.DB.QueryRowContext(ctx, `SELECT COALESCE(SUM(quantity_available), 0) FROM tickets WHERE event_id = $1`, eventID).
		Scan(&es.TotalCapacity)
	if err != nil {
		return models.EventSales{}, fmt.Errorf("failed to get event capacity: %w", err)
	}

	if es.SalesByTicket, err = s.salesByTicket(ctx, eventID); err != nil {
		return models.EventSales{}, err
	}

	salesQuery := `
		SELECT TO_CHAR(booking_date AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
			SUM(total_amount), SUM(quantity)
		FROM bookings
		WHERE event_id = $1 AND payment_status = 'completed'
		GROUP BY day
		ORDER BY day ASC`

	if es.SalesOverTime, err = s.dailySales(ctx, salesQuery, eventID); err != nil {
		return models.EventSales{}, err
	}

	return es, nil
}

func (s *Storage) salesByTicket(ctx context.Context, eventID string) ([]models.TicketSales, error) {
	query := `
		SELECT t.ticket_type, t.price, t.quantity_sold, t.quantity_available, COALESCE(SUM(b.total_amount), 0)
		FROM tickets t
		LEFT JOIN bookings b ON b.ticket_id = t.id AND b.payment_status = 'completed'
		WHERE t.event_id = $1
		GROUP BY t.id
		ORDER BY t.price ASC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales by ticket: %w", err)
	}
	defer rows.Close()

	result := make([]models.TicketSales, 0)
	for rows.Next() {
		var r models.TicketSales
		if err = rows.Scan(&r.TicketType, &r.Price, &r.Sold, &r.Available, &r.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan sales by ticket: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}
