package dashboard

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

type Response struct {
	response.Response
	models.Dashboard
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardGetter
type DashboardGetter interface {
	Dashboard(ctx context.Context, organizerID string) (models.Dashboard, error)
}

func New(log *slog.Logger, getter DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.dashboard.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		dash, err := getter.Dashboard(r.Context(), user.ID)
		if err != nil {
			log.Error("failed to build dashboard", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to get dashboard analytics", err))
			return
		}

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Dashboard: dash,
		})
	}
}
