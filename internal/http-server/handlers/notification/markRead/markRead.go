package markRead

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

type Response struct {
	response.Response
	Notification models.Notification `json:"notification"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationMarker
type NotificationMarker interface {
	MarkNotificationRead(ctx context.Context, id, userID string) (models.Notification, error)
}

func New(log *slog.Logger, marker NotificationMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.markRead.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("notification id is required"))
			return
		}

		if _, err := uuid.Parse(id); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid notification id format"))
			return
		}

		n, err := marker.MarkNotificationRead(r.Context(), id, user.ID)
		if err != nil {
			if errors.Is(err, storage.ErrNotificationNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("notification not found"))
				return
			}

			log.Error("failed to mark notification read", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to update notification", err))
			return
		}

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Notification: n,
		})
	}
}
