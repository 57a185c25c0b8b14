package unreadCount

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
	Count int64 `json:"count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UnreadCounter
type UnreadCounter interface {
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

func New(log *slog.Logger, counter UnreadCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.unreadCount.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		count, err := counter.UnreadCount(r.Context(), user.ID)
		if err != nil {
			log.Error("failed to count unread notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to get unread count", err))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Count:    count,
		})
	}
}
