package register

import (
	"context"
	"errors"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/api/validate"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/services/auth"
	"eventManager/internal/storage"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type Request struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=8"`
	UserType  models.UserType `json:"user_type" validate:"required,oneof=organizer attendee"`
	FirstName string          `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string          `json:"last_name" validate:"required,min=1,max=50"`
	Phone     string          `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type Response struct {
	response.Response
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegisterer
type UserRegisterer interface {
	Register(ctx context.Context, reg auth.Registration) (string, models.User, error)
}

func New(log *slog.Logger, registerer UserRegisterer) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

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
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		token, user, err := registerer.Register(r.Context(), auth.Registration{
			Email:     req.Email,
			Password:  req.Password,
			UserType:  req.UserType,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		})
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("user already exists")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already exists"))
				return
			}

			log.Error("failed to register user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to register user", err))
			return
		}

		log.Info("user registered", slog.String("user_id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Token:    token,
			User:     user,
		})
	}
}
