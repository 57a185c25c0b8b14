package getAttendees

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

type AttendeesResponse struct {
	response.Response
	Attendees []models.Attendee `json:"attendees"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeesGetter
type AttendeesGetter interface {
	Attendees(ctx context.Context, organizerID, eventID string) ([]models.Attendee, error)
}

func New(log *slog.Logger, getter AttendeesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAttendees.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		eventID := chi.URLParam(r, "eventId")
		if eventID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		if _, err := uuid.Parse(eventID); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		attendees, err := getter.Attendees(r.Context(), user.ID, eventID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, booking.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to view attendees for this event"))
			default:
				log.Error("failed to get attendees", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to get attendees", err))
			}
			return
		}

		if attendees == nil {
			attendees = []models.Attendee{}
		}

		render.JSON(w, r, AttendeesResponse{
			Response:  response.OK(),
			Attendees: attendees,
		})
	}
}
