package login

import (
	"context"
	"errors"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/api/validate"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/services/auth"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserAuthenticator
type UserAuthenticator interface {
	Login(ctx context.Context, email, password string) (string, models.User, error)
}

func New(log *slog.Logger, authenticator UserAuthenticator) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = v.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		token, user, err := authenticator.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Info("login rejected")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid email or password"))
				return
			}

			log.Error("failed to log in", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to log in", err))
			return
		}

		log.Info("user logged in", slog.String("user_id", user.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Token:    token,
			User:     user,
		})
	}
}
