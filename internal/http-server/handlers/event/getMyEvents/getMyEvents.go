package getMyEvents

import (
	"context"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrganizerEventsGetter
type OrganizerEventsGetter interface {
	MyEvents(ctx context.Context, organizerID string) ([]models.Event, error)
}

func New(log *slog.Logger, getter OrganizerEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getMyEvents.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		events, err := getter.MyEvents(r.Context(), user.ID)
		if err != nil {
			log.Error("failed to get organizer events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to get events", err))
			return
		}

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
