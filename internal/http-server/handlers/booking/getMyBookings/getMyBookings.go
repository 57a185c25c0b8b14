package getMyBookings

import (
	"context"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingDetails `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	MyBookings(ctx context.Context, attendeeID string, status models.PaymentStatus, upcoming *bool) ([]models.BookingDetails, error)
}

func New(log *slog.Logger, getter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getMyBookings.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		q := r.URL.Query()

		status := models.PaymentStatus(q.Get("status"))
		switch status {
		case "", models.PaymentPending, models.PaymentCompleted, models.PaymentFailed, models.PaymentRefunded:
		default:
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid status"))
			return
		}

		var upcoming *bool
		if s := q.Get("upcoming"); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("upcoming must be true or false"))
				return
			}
			upcoming = &b
		}

		bookings, err := getter.MyBookings(r.Context(), user.ID, status, upcoming)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to get bookings", err))
			return
		}

		if bookings == nil {
			bookings = []models.BookingDetails{}
		}

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
