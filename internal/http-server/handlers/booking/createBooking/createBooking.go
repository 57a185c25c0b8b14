package createBooking

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/api/validate"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/services/booking"
	"eventManager/internal/storage"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type BookingRequest struct {
	EventID  string `json:"event_id" validate:"required,uuid"`
	TicketID string `json:"ticket_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=10"`
}

type BookingResponse struct {
	response.Response
	Booking     models.Booking `json:"booking"`
	CheckoutURL *string        `json:"checkout_url"`
	MockPayment bool           `json:"mock_payment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(ctx context.Context, attendeeID, eventID, ticketID string, quantity int) (booking.CreateResult, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = v.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(
			slog.String("event_id", req.EventID),
			slog.String("ticket_id", req.TicketID),
			slog.String("user_id", user.ID),
		)

		result, err := creator.Create(r.Context(), user.ID, req.EventID, req.TicketID, req.Quantity)
		if err != nil {
			var insufficient *booking.InsufficientTicketsError

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrTicketNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
			case errors.Is(err, booking.ErrEventNotBookable):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.As(err, &insufficient):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(insufficient.Error()))
			case errors.Is(err, storage.ErrTicketsSoldOut):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("tickets sold out"))
			default:
				log.Error("failed to book event", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to create booking", err))
			}
			return
		}

		log.Info("booking created",
			slog.String("booking_id", result.Booking.ID),
			slog.String("payment_status", string(result.Booking.PaymentStatus)),
		)

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result booking.CreateResult) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response:    response.OK(),
		Booking:     result.Booking,
		CheckoutURL: result.CheckoutURL,
		MockPayment: result.MockPayment,
	})
}
