package changePassword

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/api/validate"
	"eventManager/internal/lib/logger/sl"
	authsvc "eventManager/internal/services/auth"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type Request struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type Response struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PasswordChanger
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID, current, next string) error
}

func New(log *slog.Logger, changer PasswordChanger) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.changePassword.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

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

		err = changer.ChangePassword(r.Context(), user.ID, req.CurrentPassword, req.NewPassword)
		switch {
		case err == nil:
		case errors.Is(err, authsvc.ErrWrongPassword):
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error(authsvc.ErrWrongPassword.Error()))
			return
		case errors.Is(err, authsvc.ErrSamePassword):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(authsvc.ErrSamePassword.Error()))
			return
		default:
			log.Error("failed to change password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to change password", err))
			return
		}

		log.Info("password changed", slog.String("user_id", user.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  "password updated successfully",
		})
	}
}
