package getNotifications

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

// Limit is how many of the newest notifications are returned.
const Limit = 50

type Response struct {
	response.Response
	Notifications []models.Notification `json:"notifications"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationsGetter
type NotificationsGetter interface {
	NotificationsByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
}

func New(log *slog.Logger, getter NotificationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.getNotifications.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		notifications, err := getter.NotificationsByUser(r.Context(), user.ID, Limit)
		if err != nil {
			log.Error("failed to get notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to get notifications", err))
			return
		}

		if notifications == nil {
			notifications = []models.Notification{}
		}

		render.JSON(w, r, Response{
			Response:      response.OK(),
			Notifications: notifications,
		})
	}
}
