package markAllRead

import (
	"context"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type Response struct {
	response.Response
	Modified int64 `json:"modified"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AllMarker
type AllMarker interface {
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
}

func New(log *slog.Logger, marker AllMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.markAllRead.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		n, err := marker.MarkAllNotificationsRead(r.Context(), user.ID)
		if err != nil {
			log.Error("failed to mark notifications read", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to update notifications", err))
			return
		}

		log.Debug("notifications marked read", slog.Int64("modified", n))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Modified: n,
		})
	}
}
