package eventAnalytics

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/services/analytics"
	"eventManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

type Response struct {
	response.Response
	models.EventAnalytics
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventAnalyticsGetter
type EventAnalyticsGetter interface {
	Event(ctx context.Context, organizerID, eventID string) (models.EventAnalytics, error)
}

func New(log *slog.Logger, getter EventAnalyticsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.eventAnalytics.New"

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

		stats, err := getter.Event(r.Context(), user.ID, eventID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, analytics.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to view analytics for this event"))
			default:
				log.Error("failed to build event analytics", sl.Err(err), slog.String("event_id", eventID))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to get event analytics", err))
			}
			return
		}

		render.JSON(w, r, Response{
			Response:       response.OK(),
			EventAnalytics: stats,
		})
	}
}
