package auth

import (
	"context"
	"errors"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/jwt"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strings"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenParser
type TokenParser interface {
	Parse(tokenString string) (jwt.Claims, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByID(ctx context.Context, id string) (models.User, error)
}

func NewContext(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(models.User)
	return user, ok
}

// New authenticates the bearer token and puts the current user into the
// request context.
func New(log *slog.Logger, tokens TokenParser, users UserProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			claims, err := tokens.Parse(tokenString)
			if err != nil {
				log.Debug("rejected token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			user, err := users.UserByID(r.Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("user not found"))
					return
				}

				log.Error("failed to load user", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireUserType lets through authenticated users of the given type only.
func RequireUserType(userType models.UserType) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			if user.UserType != userType {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied: "+string(userType)+"s only"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
