package auth

import (
	"context"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"eventManager/internal/services/auth/mocks"
	"eventManager/internal/storage"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (*Service, *mocks.Storage, *mocks.TokenIssuer) {
	t.Helper()

	st := mocks.NewStorage(t)
	tokens := mocks.NewTokenIssuer(t)

	svc := New(slogdiscard.NewDiscardLogger(), st, tokens)
	svc.cost = bcrypt.MinCost

	return svc, st, tokens
}

func hashOf(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("Hashes password and lowercases email", func(t *testing.T) {
		t.Parallel()

		svc, st, tokens := newService(t)

		st.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Email == "ada@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("supersecret")) == nil
		})).Return(models.User{ID: "u1", Email: "ada@example.com"}, nil)
		tokens.On("NewToken", models.User{ID: "u1", Email: "ada@example.com"}).Return("tok", nil)

		token, user, err := svc.Register(context.Background(), Registration{
			Email:     "  Ada@Example.COM ",
			Password:  "supersecret",
			UserType:  models.UserTypeAttendee,
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		t.Parallel()

		svc, st, _ := newService(t)
		st.On("CreateUser", mock.Anything, mock.Anything).Return(models.User{}, storage.ErrUserExists)

		_, _, err := svc.Register(context.Background(), Registration{Email: "a@b.co", Password: "supersecret"})
		assert.ErrorIs(t, err, storage.ErrUserExists)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	user := models.User{ID: "u1", Email: "ada@example.com", PasswordHash: hashOf(t, "supersecret")}

	testCases := []struct {
		name      string
		email     string
		password  string
		mockSetup func(st *mocks.Storage, tokens *mocks.TokenIssuer)
		wantErr   error
	}{
		{
			name:     "Success",
			email:    "ADA@example.com",
			password: "supersecret",
			mockSetup: func(st *mocks.Storage, tokens *mocks.TokenIssuer) {
				st.On("UserByEmail", mock.Anything, "ada@example.com").Return(user, nil)
				tokens.On("NewToken", user).Return("tok", nil)
			},
		},
		{
			name:     "Wrong password",
			email:    "ada@example.com",
			password: "nope-nope",
			mockSetup: func(st *mocks.Storage, tokens *mocks.TokenIssuer) {
				st.On("UserByEmail", mock.Anything, "ada@example.com").Return(user, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "who@example.com",
			password: "supersecret",
			mockSetup: func(st *mocks.Storage, tokens *mocks.TokenIssuer) {
				st.On("UserByEmail", mock.Anything, "who@example.com").Return(models.User{}, storage.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, st, tokens := newService(t)
			tc.mockSetup(st, tokens)

			token, _, err := svc.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "tok", token)
		})
	}
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	user := models.User{ID: "u1", PasswordHash: hashOf(t, "oldpassword")}

	testCases := []struct {
		name    string
		current string
		next    string
		update  bool
		wantErr error
	}{
		{name: "Success", current: "oldpassword", next: "newpassword", update: true},
		{name: "Wrong current", current: "guessing!", next: "newpassword", wantErr: ErrWrongPassword},
		{name: "Same password", current: "oldpassword", next: "oldpassword", wantErr: ErrSamePassword},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, st, _ := newService(t)
			st.On("UserByID", mock.Anything, "u1").Return(user, nil)
			if tc.update {
				st.On("UpdatePassword", mock.Anything, "u1", mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte(tc.next)) == nil
				})).Return(nil)
			}

			err := svc.ChangePassword(context.Background(), "u1", tc.current, tc.next)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
