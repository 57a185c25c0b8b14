package updateProfile

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/api/validate"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type Request struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type Response struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileUpdater
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID, firstName, lastName, phone string) (models.User, error)
}

func New(log *slog.Logger, updater ProfileUpdater) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.updateProfile.New"

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

		updated, err := updater.UpdateProfile(r.Context(), user.ID, req.FirstName, req.LastName, req.Phone)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			log.Error("failed to update profile", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to update profile", err))
			return
		}

		log.Info("profile updated", slog.String("user_id", user.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     updated,
		})
	}
}
