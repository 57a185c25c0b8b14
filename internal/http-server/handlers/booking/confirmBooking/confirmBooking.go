package confirmBooking

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/services/booking"
	"eventManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"io"
	"log/slog"
	"net/http"
)

// BookingRequest is optional, an empty body keeps the checkout transaction id.
type BookingRequest struct {
	TransactionID string `json:"transaction_id"`
}

type BookingResponse struct {
	response.Response
	Message string         `json:"message"`
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingConfirmer
type BookingConfirmer interface {
	Confirm(ctx context.Context, attendeeID, bookingID, transactionID string) (booking.ConfirmResult, error)
}

func New(log *slog.Logger, confirmer BookingConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.confirmBooking.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		if _, err := uuid.Parse(bookingID); err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		result, err := confirmer.Confirm(r.Context(), user.ID, bookingID, req.TransactionID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to confirm this booking"))
			case errors.Is(err, storage.ErrBookingNotPayable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking can no longer be confirmed"))
			case errors.Is(err, storage.ErrTicketsSoldOut):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("tickets sold out"))
			default:
				log.Error("failed to confirm booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to confirm booking", err))
			}
			return
		}

		msg := "payment confirmed"
		if result.AlreadyCompleted {
			msg = "payment already completed"
		} else {
			log.Info("booking confirmed")
		}

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Message:  msg,
			Booking:  result.Booking,
		})
	}
}
