package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const eventSelect = `
	SELECT e.id, e.organizer_id, e.event_name, e.description, e.event_date, e.event_time, e.end_time,
		e.venue, e.address, e.category, e.event_image, e.capacity, e.status, e.created_at, e.updated_at,
		p.min_price, p.max_price, u.first_name || ' ' || u.last_name
	FROM events e
	JOIN users u ON u.id = e.organizer_id
	LEFT JOIN (
		SELECT event_id, MIN(price) AS min_price, MAX(price) AS max_price
		FROM tickets
		WHERE is_active
		GROUP BY event_id
	) p ON p.event_id = e.id`

func scanEvent(row scanner) (models.Event, error) {
	var (
		event    models.Event
		minPrice decimal.NullDecimal
		maxPrice decimal.NullDecimal
	)

	err := row.Scan(
		&event.ID,
		&event.OrganizerID,
		&event.EventName,
		&event.Description,
		&event.EventDate,
		&event.EventTime,
		&event.EndTime,
		&event.Venue,
		&event.Address,
		&event.Category,
		&event.EventImage,
		&event.Capacity,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
		&minPrice,
		&maxPrice,
		&event.OrganizerName,
	)
	if err != nil {
		return models.Event{}, err
	}

	if minPrice.Valid {
		event.MinPrice = &minPrice.Decimal
	}
	if maxPrice.Valid {
		event.MaxPrice = &maxPrice.Decimal
	}

	return event, nil
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	query := `
		INSERT INTO events (id, organizer_id, event_name, description, event_date, event_time, end_time,
			venue, address, category, event_image, capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		event.ID,
		event.OrganizerID,
		event.EventName,
		event.Description,
		event.EventDate,
		event.EventTime,
		event.EndTime,
		event.Venue,
		event.Address,
		event.Category,
		event.EventImage,
		event.Capacity,
		event.Status,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *Storage) EventByID(ctx context.Context, id string) (models.Event, error) {
	event, err := scanEvent(s.DB.QueryRowContext(ctx, eventSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, storage.ErrEventNotFound
		}
		return models.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) EventsByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	return s.queryEvents(ctx, eventSelect+` WHERE e.organizer_id = $1 ORDER BY e.created_at DESC`, organizerID)
}

// ListEvents returns one page of events matching the filter and the total match count.
func (s *Storage) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error) {
	where, args := buildEventFilter(filter)

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events e`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	query := eventSelect + where + eventOrder(filter) +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	events, err := s.queryEvents(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (s *Storage) queryEvents(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// buildEventFilter renders the WHERE clause of the public listing. The
// clause only references the events table so it can serve the count query too.
func buildEventFilter(f models.EventFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	status := f.Status
	if status == "" {
		status = models.EventStatusPublished
	}
	conds = append(conds, "e.status = "+arg(status))

	if f.Search != "" {
		p := arg("%" + escapeLike(f.Search) + "%")
		conds = append(conds, fmt.Sprintf("(e.event_name ILIKE %[1]s OR e.description ILIKE %[1]s OR e.venue ILIKE %[1]s)", p))
	}

	if f.Category != "" {
		conds = append(conds, "e.category = "+arg(f.Category))
	}

	if f.DateFrom == nil && f.DateTo == nil {
		conds = append(conds, "e.event_date >= "+arg(f.Now))
	}
	if f.DateFrom != nil {
		conds = append(conds, "e.event_date >= "+arg(*f.DateFrom))
	}
	if f.DateTo != nil {
		conds = append(conds, "e.event_date <= "+arg(endOfDay(*f.DateTo)))
	}

	if f.PriceMin != nil || f.PriceMax != nil {
		priceConds := []string{"t.event_id = e.id", "t.is_active"}
		if f.PriceMin != nil {
			priceConds = append(priceConds, "t.price >= "+arg(*f.PriceMin))
		}
		if f.PriceMax != nil {
			priceConds = append(priceConds, "t.price <= "+arg(*f.PriceMax))
		}
		conds = append(conds, "EXISTS (SELECT 1 FROM tickets t WHERE "+strings.Join(priceConds, " AND ")+")")
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// eventOrder sorts events without an active ticket last in both directions.
func eventOrder(f models.EventFilter) string {
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	switch f.SortBy {
	case models.SortByName:
		return " ORDER BY e.event_name " + dir + ", e.id"
	case models.SortByPrice:
		return " ORDER BY p.min_price " + dir + " NULLS LAST, e.event_date ASC, e.id"
	default:
		return " ORDER BY e.event_date " + dir + ", e.id"
	}
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (s *Storage) UpdateEvent(ctx context.Context, id string, upd models.EventUpdate) (models.Event, error) {
	var (
		sets []string
		args []any
	)

	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.EventName != nil {
		set("event_name", *upd.EventName)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.EventDate != nil {
		set("event_date", *upd.EventDate)
	}
	if upd.EventTime != nil {
		set("event_time", *upd.EventTime)
	}
	if upd.EndTime != nil {
		set("end_time", *upd.EndTime)
	}
	if upd.Venue != nil {
		set("venue", *upd.Venue)
	}
	if upd.Address != nil {
		set("address", *upd.Address)
	}
	if upd.Category != nil {
		set("category", *upd.Category)
	}
	if upd.EventImage != nil {
		set("event_image", *upd.EventImage)
	}
	if upd.Capacity != nil {
		set("capacity", *upd.Capacity)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf(`UPDATE events SET %s, updated_at = NOW() WHERE id = $%d`,
			strings.Join(sets, ", "), len(args))

		res, err := s.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return models.Event{}, fmt.Errorf("failed to update event: %w", err)
		}

		if n, _ := res.RowsAffected(); n == 0 {
			return models.Event{}, storage.ErrEventNotFound
		}
	}

	return s.EventByID(ctx, id)
}

// DeleteEvent removes an event together with its tickets and bookings as long
// as nobody has paid for it.
func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	query := `
		DELETE FROM events e
		WHERE e.id = $1
		AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.event_id = e.id AND b.payment_status = 'completed'
		)`

	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var exists bool
	if err = s.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}

	if exists {
		return storage.ErrEventHasBookings
	}

	return storage.ErrEventNotFound
}
