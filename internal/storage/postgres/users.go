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

const userColumns = `id, email, password_hash, user_type, first_name, last_name, phone, created_at, updated_at`

func scanUser(row scanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.UserType,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, email, password_hash, user_type, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.UserType,
		user.FirstName,
		user.LastName,
		user.Phone,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isPgError(err, uniqueViolation) {
			return models.User{}, storage.ErrUserExists
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *Storage) UserByID(ctx context.Context, id string) (models.User, error) {
	return s.userBy(ctx, "id", id)
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.userBy(ctx, "email", email)
}

func (s *Storage) userBy(ctx context.Context, column, value string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1`

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Storage) UpdateProfile(ctx context.Context, id, firstName, lastName, phone string) (models.User, error) {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, id, firstName, lastName, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

func (s *Storage) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
