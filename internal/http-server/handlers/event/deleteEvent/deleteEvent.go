package deleteEvent

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/services/events"
	"eventManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

type Response struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	Delete(ctx context.Context, organizerID, id string) error
}

func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		eventID := chi.URLParam(r, "id")
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

		err := deleter.Delete(r.Context(), user.ID, eventID)
		switch {
		case err == nil:
		case errors.Is(err, storage.ErrEventNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		case errors.Is(err, events.ErrForbidden):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("not authorized to delete this event"))
			return
		case errors.Is(err, storage.ErrEventHasBookings):
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("cannot delete an event with paid bookings, cancel it instead"))
			return
		default:
			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to delete event", err))
			return
		}

		log.Info("event deleted", slog.String("event_id", eventID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  "event deleted successfully",
		})
	}
}
