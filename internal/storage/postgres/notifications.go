package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"fmt"

	"github.com/google/uuid"
)

const notificationColumns = `id, user_id, message, type, read,
	COALESCE(related_event_id::text, ''), COALESCE(related_booking_id::text, ''), created_at`

func scanNotification(row scanner) (models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Message,
		&n.Type,
		&n.Read,
		&n.RelatedEventID,
		&n.RelatedBookingID,
		&n.CreatedAt,
	)
	return n, err
}

func (s *Storage) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Type == "" {
		n.Type = models.NotificationGeneral
	}

	query := `
		INSERT INTO notifications (id, user_id, message, type, related_event_id, related_booking_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NULLIF($6, '')::uuid)
		RETURNING ` + notificationColumns

	created, err := scanNotification(s.DB.QueryRowContext(ctx, query,
		n.ID,
		n.UserID,
		n.Message,
		n.Type,
		n.RelatedEventID,
		n.RelatedBookingID,
	))
	if err != nil {
		return models.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return created, nil
}

func (s *Storage) NotificationsByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

func (s *Storage) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (s *Storage) MarkNotificationRead(ctx context.Context, id, userID string) (models.Notification, error) {
	query := `
		UPDATE notifications SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	n, err := scanNotification(s.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notification{}, storage.ErrNotificationNotFound
		}
		return models.Notification{}, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return n, nil
}

func (s *Storage) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND NOT read`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return n, nil
}
