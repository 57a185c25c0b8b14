package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const ticketColumns = `id, event_id, ticket_type, price, quantity_available, quantity_sold, description, is_active, created_at, updated_at`

func scanTicket(row scanner) (models.Ticket, error) {
	var ticket models.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.TicketType,
		&ticket.Price,
		&ticket.QuantityAvailable,
		&ticket.QuantitySold,
		&ticket.Description,
		&ticket.IsActive,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	return ticket, err
}

func (s *Storage) CreateTicket(ctx context.Context, ticket models.Ticket) (models.Ticket, error) {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}

	query := `
		INSERT INTO tickets (id, event_id, ticket_type, price, quantity_available, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING ` + ticketColumns

	created, err := scanTicket(s.DB.QueryRowContext(ctx, query,
		ticket.ID,
		ticket.EventID,
		ticket.TicketType,
		ticket.Price,
		ticket.QuantityAvailable,
		ticket.Description,
	))
	if err != nil {
		if isPgError(err, foreignKeyViolation) {
			return models.Ticket{}, storage.ErrEventNotFound
		}
		return models.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	return created, nil
}

func (s *Storage) TicketByID(ctx context.Context, id string) (models.Ticket, error) {
	ticket, err := scanTicket(s.DB.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ticket{}, storage.ErrTicketNotFound
		}
		return models.Ticket{}, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

// TicketsByEvent lists the event's tickets cheapest first.
func (s *Storage) TicketsByEvent(ctx context.Context, eventID string, activeOnly bool) ([]models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE event_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY price ASC, created_at ASC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]models.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

func (s *Storage) UpdateTicket(ctx context.Context, id string, upd models.TicketUpdate) (models.Ticket, error) {
	var (
		sets []string
		args []any
	)

	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.TicketType != nil {
		set("ticket_type", *upd.TicketType)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.QuantityAvailable != nil {
		set("quantity_available", *upd.QuantityAvailable)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.IsActive != nil {
		set("is_active", *upd.IsActive)
	}

	if len(sets) == 0 {
		return s.TicketByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tickets SET %s, updated_at = NOW() WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	if upd.QuantityAvailable != nil {
		query += fmt.Sprintf(` AND quantity_sold <= $%d`, len(args)+1)
		args = append(args, *upd.QuantityAvailable)
	}
	query += ` RETURNING ` + ticketColumns

	ticket, err := scanTicket(s.DB.QueryRowContext(ctx, query, args...))
	if err == nil {
		return ticket, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return models.Ticket{}, fmt.Errorf("failed to update ticket: %w", err)
	}

	if _, err = s.TicketByID(ctx, id); err != nil {
		return models.Ticket{}, err
	}

	return models.Ticket{}, storage.ErrCapacityBelowSold
}

// DeleteTicket hard-deletes a ticket no booking references and deactivates
// it otherwise, so pending checkouts keep their booking. It reports whether
// the ticket was only deactivated.
func (s *Storage) DeleteTicket(ctx context.Context, id string) (bool, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	var sold int
	err = tx.QueryRowContext(ctx, `SELECT quantity_sold FROM tickets WHERE id = $1 FOR UPDATE`, id).Scan(&sold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, storage.ErrTicketNotFound
		}
		return false, fmt.Errorf("failed to lock ticket: %w", err)
	}

	var booked bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE ticket_id = $1)`, id).Scan(&booked)
	if err != nil {
		return false, fmt.Errorf("failed to check ticket bookings: %w", err)
	}

	deactivated := sold > 0 || booked
	if deactivated {
		_, err = tx.ExecContext(ctx, `UPDATE tickets SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	} else {
		_, err = tx.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete ticket: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return deactivated, nil
}

// incrementSold adds quantity to the sold counter only while it still fits
// the ticket's capacity. It reports false when the ticket is sold out.
func incrementSold(ctx context.Context, tx *sql.Tx, ticketID string, quantity int) (bool, error) {
	query := `
		UPDATE tickets
		SET quantity_sold = quantity_sold + $2, updated_at = NOW()
		WHERE id = $1 AND quantity_sold + $2 <= quantity_available`

	res, err := tx.ExecContext(ctx, query, ticketID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to increment sold tickets: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to increment sold tickets: %w", err)
	}

	return n == 1, nil
}
