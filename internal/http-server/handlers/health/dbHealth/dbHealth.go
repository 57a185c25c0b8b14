package dbHealth

import (
	"context"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

const pingTimeout = 2 * time.Second

type Response struct {
	response.Response
	Database string `json:"database"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(log *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.dbHealth.New"

		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Error("database is unreachable", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, Response{
				Response: response.InternalError(r, "database is unreachable", err),
				Database: "disconnected",
			})
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Database: "connected",
		})
	}
}
