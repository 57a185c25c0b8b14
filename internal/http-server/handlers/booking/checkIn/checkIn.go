package checkIn

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/services/booking"
	"eventManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

type Response struct {
	response.Response
	Message string         `json:"message"`
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckInToggler
type CheckInToggler interface {
	ToggleCheckIn(ctx context.Context, organizerID, bookingID string) (models.Booking, error)
}

func New(log *slog.Logger, toggler CheckInToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.checkIn.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		if _, err := uuid.Parse(bookingID); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		b, err := toggler.ToggleCheckIn(r.Context(), user.ID, bookingID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to check in attendees for this event"))
			case errors.Is(err, storage.ErrBookingNotCompleted):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("cannot check in unpaid booking"))
			default:
				log.Error("failed to toggle check-in", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to update check-in status", err))
			}
			return
		}

		msg := "attendee checked in"
		if b.CheckInStatus == models.NotCheckedIn {
			msg = "check-in undone"
		}

		log.Info(msg, slog.String("booking_id", bookingID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  msg,
			Booking:  b,
		})
	}
}
