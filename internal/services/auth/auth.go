// Package auth registers users and issues their access tokens.
package auth

import (
	"context"
	"errors"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrSamePassword       = errors.New("new password must be different from the current password")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName, phone string) (models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	NewToken(user models.User) (string, error)
}

type Service struct {
	log     *slog.Logger
	storage Storage
	tokens  TokenIssuer
	cost    int
}

func New(log *slog.Logger, storage Storage, tokens TokenIssuer) *Service {
	return &Service{
		log:     log.With(slog.String("component", "services/auth")),
		storage: storage,
		tokens:  tokens,
		cost:    bcrypt.DefaultCost,
	}
}

type Registration struct {
	Email     string
	Password  string
	UserType  models.UserType
	FirstName string
	LastName  string
	Phone     string
}

func (s *Service) Register(ctx context.Context, reg Registration) (string, models.User, error) {
	const op = "services.auth.Register"

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return "", models.User{}, fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	user, err := s.storage.CreateUser(ctx, models.User{
		Email:        normalizeEmail(reg.Email),
		PasswordHash: string(hash),
		UserType:     reg.UserType,
		FirstName:    strings.TrimSpace(reg.FirstName),
		LastName:     strings.TrimSpace(reg.LastName),
		Phone:        strings.TrimSpace(reg.Phone),
	})
	if err != nil {
		return "", models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.tokens.NewToken(user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("user_id", user.ID), slog.String("user_type", string(user.UserType)))

	return token, user, nil
}

// Login never tells an unknown email apart from a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	const op = "services.auth.Login"

	user, err := s.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.tokens.NewToken(user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return token, user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID, firstName, lastName, phone string) (models.User, error) {
	const op = "services.auth.UpdateProfile"

	user, err := s.storage.UpdateProfile(ctx, userID,
		strings.TrimSpace(firstName),
		strings.TrimSpace(lastName),
		strings.TrimSpace(phone),
	)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	const op = "services.auth.ChangePassword"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	if current == next {
		return ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	if err = s.storage.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
